// Package webhook validates inbound Telegram webhook bodies.
package webhook

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/skynet2/botbot/pkg/common"
)

var jsonNull = []byte("null")

// Parse decodes body and checks it against the webhook schema. Every field is
// required, must use the exact lowercase key and must have the declared JSON
// type. Fields are checked in declaration order, presence before type, and the
// first violation is returned marked with common.ErrValidation. Unknown keys
// are ignored.
func Parse(body []byte) (*Payload, error) {
	var fields map[string]json.RawMessage

	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, common.Mark(describe("payload", err), common.ErrValidation)
	}

	c := &checker{}
	root := object{fields: fields}
	payload := &Payload{
		UpdateID: value[int64](c, root, "update_id"),
		Message:  buildMessage(c, c.object(root, "message")),
	}

	if c.err != nil {
		return nil, common.Mark(c.err, common.ErrValidation)
	}

	return payload, nil
}

// EncodeMessage serialises m the way it is embedded into prompts: keys in
// declaration order and no HTML escaping.
func EncodeMessage(m Message) (string, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(m); err != nil {
		return "", errors.Wrap(err, "encode message")
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// WithText returns a copy of m with its text replaced.
func (m Message) WithText(text string) Message {
	m.Text = text

	return m
}

type checker struct {
	err error
}

// object is one decoded JSON object level, keyed by the exact names sent.
type object struct {
	path   string
	fields map[string]json.RawMessage
}

func (o object) at(key string) string {
	if o.path == "" {
		return key
	}

	return o.path + "." + key
}

func (c *checker) raw(parent object, key string) (json.RawMessage, bool) {
	if c.err != nil {
		return nil, false
	}

	raw, ok := parent.fields[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		c.err = errors.Newf("%s: required", parent.at(key))

		return nil, false
	}

	return raw, true
}

func (c *checker) object(parent object, key string) object {
	path := parent.at(key)

	raw, ok := c.raw(parent, key)
	if !ok {
		return object{path: path}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		c.err = describe(path, err)
	}

	return object{path: path, fields: fields}
}

func value[T any](c *checker, parent object, key string) T {
	var v T

	raw, ok := c.raw(parent, key)
	if !ok {
		return v
	}

	if err := json.Unmarshal(raw, &v); err != nil {
		c.err = describe(parent.at(key), err)
	}

	return v
}

func buildMessage(c *checker, o object) Message {
	return Message{
		MessageID: value[int64](c, o, "message_id"),
		From:      buildUser(c, c.object(o, "from")),
		Chat:      buildChat(c, c.object(o, "chat")),
		Date:      value[int64](c, o, "date"),
		Text:      value[string](c, o, "text"),
	}
}

func buildUser(c *checker, o object) User {
	return User{
		ID:           value[int64](c, o, "id"),
		IsBot:        value[bool](c, o, "is_bot"),
		FirstName:    value[string](c, o, "first_name"),
		Username:     value[string](c, o, "username"),
		LanguageCode: value[string](c, o, "language_code"),
	}
}

func buildChat(c *checker, o object) Chat {
	return Chat{
		ID:        value[int64](c, o, "id"),
		FirstName: value[string](c, o, "first_name"),
		Username:  value[string](c, o, "username"),
		Type:      value[string](c, o, "type"),
	}
}

func describe(path string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return errors.Newf("%s: expected %s, got %s", path, kindName(typeErr.Type), typeErr.Value)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return errors.Wrapf(err, "malformed json at offset %d", syntaxErr.Offset)
	}

	return errors.Wrapf(err, "decode %s", path)
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "unknown"
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Struct, reflect.Map:
		return "object"
	default:
		return t.Kind().String()
	}
}
