package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/gestemps/internal/contract"
	"github.com/spf13/pflag"
)

const stdinPath = "-"

// inputFlags locates the two timesheet blocks. Either may be omitted; "-"
// reads that block from stdin.
type inputFlags struct {
	offPath    string
	clientPath string
}

func (f *inputFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.offPath, "off", "o", "", "off-client activities file, - for stdin")
	fs.StringVarP(&f.clientPath, "client", "c", "", "on-client work orders file, - for stdin")
}

func (f *inputFlags) validate() error {
	if f.offPath == "" && f.clientPath == "" {
		return errors.New("at least one of --off or --client is required")
	}
	if f.offPath == stdinPath && f.clientPath == stdinPath {
		return errors.New("only one of --off and --client can read from stdin")
	}
	return nil
}

func (f *inputFlags) request(stdin io.Reader) (contract.ComputeRequest, error) {
	off, err := readBlock(f.offPath, stdin)
	if err != nil {
		return contract.ComputeRequest{}, err
	}
	client, err := readBlock(f.clientPath, stdin)
	if err != nil {
		return contract.ComputeRequest{}, err
	}
	return contract.ComputeRequest{OffClientText: off, ClientText: client}, nil
}

func readBlock(path string, stdin io.Reader) (string, error) {
	switch path {
	case "":
		return "", nil
	case stdinPath:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return string(data), nil
	}
}
