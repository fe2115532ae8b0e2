package main

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/samber/oops"

	"github.com/go-i2p/go-signalcontent/lib/util"
)

// errInput marks failures reading or decoding the command input, so callers
// can match them with errors.Is().
var errInput = errors.New("unreadable input")

// readInput reads path (or stdin for "" and "-") and strips the text
// encoding named by format.
func readInput(stdin io.Reader, path, format string) ([]byte, error) {
	var r io.Reader = stdin
	if !util.IsStdinPath(path) {
		if !util.CheckFileExists(path) {
			return nil, oops.Wrapf(errInput, "%s does not exist", path)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, oops.Wrapf(errors.Join(errInput, err), "open %s", path)
		}
		util.RegisterCloser(f)
		r = f
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, oops.Wrapf(errors.Join(errInput, err), "read %s", displayPath(path))
	}
	return decodeInput(raw, format)
}

func decodeInput(raw []byte, format string) ([]byte, error) {
	switch format {
	case "", "raw":
		return raw, nil
	case "hex":
		out, err := hex.DecodeString(compact(raw))
		if err != nil {
			return nil, oops.Wrapf(errors.Join(errInput, err), "hex input")
		}
		return out, nil
	case "base64":
		s := compact(raw)
		out, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			if out, rawErr := base64.RawStdEncoding.DecodeString(s); rawErr == nil {
				return out, nil
			}
			return nil, oops.Wrapf(errors.Join(errInput, err), "base64 input")
		}
		return out, nil
	default:
		return nil, oops.Wrapf(errInput, "unknown input encoding %q", format)
	}
}

// compact drops all whitespace so wrapped dumps decode.
func compact(b []byte) string {
	return strings.Join(strings.Fields(string(b)), "")
}

func displayPath(path string) string {
	if util.IsStdinPath(path) {
		return "<stdin>"
	}
	return path
}
