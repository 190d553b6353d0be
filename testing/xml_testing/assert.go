package xml_testing

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"
)

// T provides the testing interface for capturing failures with testing assert
// utilities.
type T interface {
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Helper()
}

// Tokens decodes the XML document b into its token stream. Element and
// attribute order is kept as written.
func Tokens(b []byte) ([]xml.Token, error) {
	d := xml.NewDecoder(bytes.NewReader(b))

	var toks []xml.Token
	for {
		tok, err := d.RawToken()
		if err == io.EOF {
			return toks, nil
		}
		if err != nil {
			return nil, fmt.Errorf("malformed xml, %w", err)
		}
		toks = append(toks, xml.CopyToken(tok))
	}
}

// XMLEqual compares two XML documents token by token, including the order of
// attributes and elements. Returns an error describing the difference if the
// documents are not equal.
func XMLEqual(expect, actual []byte) error {
	expectToks, err := Tokens(expect)
	if err != nil {
		return fmt.Errorf("failed to decode expected xml, %v", err)
	}
	actualToks, err := Tokens(actual)
	if err != nil {
		return fmt.Errorf("failed to decode actual xml, %v", err)
	}

	if diff := cmp.Diff(expectToks, actualToks); len(diff) != 0 {
		return fmt.Errorf("XML mismatch (-expect +actual):\n%s", diff)
	}
	return nil
}

// AssertXML compares two XML documents and emits a testing error if they are
// not equal. Returns false if the documents differ.
func AssertXML(t T, expect, actual []byte) bool {
	t.Helper()

	if err := XMLEqual(expect, actual); err != nil {
		t.Errorf("expect XML equal, %v", err)
		return false
	}
	return true
}
