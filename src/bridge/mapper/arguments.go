package mapper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/uber/scene-bridge/src/bridge/internal/errors"
)

// serializedURI is the JSON shape of a URI object sent by VS Code based hosts.
type serializedURI struct {
	External  string `json:"external"`
	FsPath    string `json:"fsPath"`
	Scheme    string `json:"scheme"`
	Authority string `json:"authority"`
	Path      string `json:"path"`
}

// ArgumentsToLocator decodes the resource locator passed as the first argument of a host command.
// A plain string is used as is. A serialized URI object is turned back into its string form.
func ArgumentsToLocator(command string, args []interface{}) (string, error) {
	raw, err := firstArgument(command, args)
	if err != nil {
		return "", err
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return "", &errors.InvalidArgumentsError{Command: command, Reason: "empty locator"}
		}
		return s, nil
	}

	var u serializedURI
	if err := json.Unmarshal(raw, &u); err != nil {
		return "", &errors.InvalidArgumentsError{Command: command, Reason: fmt.Sprintf("locator must be a string or URI object: %s", err)}
	}
	switch {
	case u.External != "":
		return u.External, nil
	case u.Scheme != "" && u.Path != "":
		return (&url.URL{Scheme: u.Scheme, Host: u.Authority, Path: u.Path}).String(), nil
	case u.FsPath != "":
		return u.FsPath, nil
	}
	return "", &errors.InvalidArgumentsError{Command: command, Reason: "URI object has no usable location"}
}

// ArgumentsToString decodes the first argument of a host command as a string.
func ArgumentsToString(command string, args []interface{}) (string, error) {
	raw, err := firstArgument(command, args)
	if err != nil {
		return "", err
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", &errors.InvalidArgumentsError{Command: command, Reason: fmt.Sprintf("expected a string: %s", err)}
	}
	return s, nil
}

// ArgumentsToText decodes the first argument for display. Strings are used as is, any other value is shown as indented JSON.
func ArgumentsToText(command string, args []interface{}) (string, error) {
	raw, err := firstArgument(command, args)
	if err != nil {
		return "", err
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", &errors.InvalidArgumentsError{Command: command, Reason: err.Error()}
	}
	return buf.String(), nil
}

// ArgumentsToPayload returns the first argument as raw JSON, or null when no argument was sent.
func ArgumentsToPayload(args []interface{}) json.RawMessage {
	if len(args) == 0 {
		return json.RawMessage("null")
	}
	raw, err := rawArgument(args[0])
	if err != nil {
		return json.RawMessage("null")
	}
	return raw
}

func firstArgument(command string, args []interface{}) (json.RawMessage, error) {
	if len(args) == 0 {
		return nil, &errors.InvalidArgumentsError{Command: command, Reason: "missing argument"}
	}
	raw, err := rawArgument(args[0])
	if err != nil {
		return nil, &errors.InvalidArgumentsError{Command: command, Reason: err.Error()}
	}
	return raw, nil
}

func rawArgument(arg interface{}) (json.RawMessage, error) {
	switch v := arg.(type) {
	case json.RawMessage:
		return v, nil
	case []byte:
		return json.RawMessage(v), nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return json.RawMessage(b), nil
	}
}
