package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// jsonObject is the decoded form of a JSON object; key order is kept.
type jsonObject = *orderedmap.OrderedMap[string, any]

// documents decodes every positional argument as one JSON document. Without
// arguments the documents are read from stdin until EOF.
func documents(cmd *cobra.Command, args []string) ([]any, error) {
	if len(args) == 0 {
		return decodeStream(cmd.InOrStdin())
	}
	docs := make([]any, 0, len(args))
	for i, arg := range args {
		v, err := decodeOne(strings.NewReader(arg))
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		docs = append(docs, v)
	}
	return docs, nil
}

func decodeStream(r io.Reader) ([]any, error) {
	dec := newDecoder(r)
	var docs []any
	for {
		v, err := decodeValue(dec)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("stdin document %d: %w", len(docs)+1, err)
		}
		docs = append(docs, v)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: no JSON document given", errBadInput)
	}
	return docs, nil
}

func decodeOne(r io.Reader) (any, error) {
	dec := newDecoder(r)
	v, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", errBadInput)
		}
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after document", errBadInput)
	}
	return v, nil
}

func newDecoder(r io.Reader) *json.Decoder {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return dec
}

// decodeValue reads one value token by token so objects become ordered maps
// at every depth. Numbers become float64, the way encoding/json decodes them
// into any.
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%w: %v", errBadInput, err)
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			items := []any{}
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, unexpectedEOF(err)
				}
				items = append(items, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %v", errBadInput, err)
			}
			return items, nil
		case '{':
			obj := orderedmap.New[string, any]()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("%w: %v", errBadInput, err)
				}
				v, err := decodeValue(dec)
				if err != nil {
					return nil, unexpectedEOF(err)
				}
				obj.Set(keyTok.(string), v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %v", errBadInput, err)
			}
			return obj, nil
		}
		return nil, fmt.Errorf("%w: unexpected %q", errBadInput, t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %s: %v", errBadInput, t, err)
		}
		return f, nil
	default:
		return t, nil
	}
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected end of document", errBadInput)
	}
	return err
}

// parseValue decodes a single flag value. Text that is not valid JSON is
// taken as a plain string, so --value moe works as well as --value '"moe"'.
func parseValue(s string) any {
	v, err := decodeOne(bytes.NewBufferString(s))
	if err != nil {
		return s
	}
	return v
}

func asArray(doc any, pos int) ([]any, error) {
	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: document %d is %s, want an array", errShape, pos+1, kind(doc))
	}
	return items, nil
}

func asArrays(docs []any) ([][]any, error) {
	out := make([][]any, len(docs))
	for i, doc := range docs {
		items, err := asArray(doc, i)
		if err != nil {
			return nil, err
		}
		out[i] = items
	}
	return out, nil
}

func asObjects(docs []any) ([]jsonObject, error) {
	out := make([]jsonObject, len(docs))
	for i, doc := range docs {
		obj, ok := doc.(jsonObject)
		if !ok {
			return nil, fmt.Errorf("%w: document %d is %s, want an object", errShape, i+1, kind(doc))
		}
		out[i] = obj
	}
	return out, nil
}

func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "an array"
	case jsonObject:
		return "an object"
	case string:
		return "a string"
	case float64:
		return "a number"
	case bool:
		return "a boolean"
	}
	return fmt.Sprintf("%T", v)
}
