package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Content *string `json:"content" validate:"required,max=255"`
	Done    *bool   `json:"is_completed"`
}

func ptr[T any](v T) *T { return &v }

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		in      payload
		wantLoc []string
		wantMsg string
	}{
		{name: "valid", in: payload{Content: ptr("buy bread")}},
		{name: "empty string is allowed", in: payload{Content: ptr("")}},
		{name: "255 multibyte characters", in: payload{Content: ptr(strings.Repeat("ж", 255))}},
		{
			name:    "missing content",
			in:      payload{},
			wantLoc: []string{"body", "content"},
			wantMsg: "field required",
		},
		{
			name:    "too long",
			in:      payload{Content: ptr(strings.Repeat("a", 256))},
			wantLoc: []string{"body", "content"},
			wantMsg: "must not exceed 255 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if tt.wantLoc == nil {
				assert.NoError(t, err)
				return
			}

			var verr *Error
			require.True(t, errors.As(err, &verr), "want *Error, got %T", err)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.wantLoc, verr.Fields[0].Loc)
			assert.Equal(t, tt.wantMsg, verr.Fields[0].Msg)
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  bool
		wantLoc  []string
		wantType string
	}{
		{name: "valid", body: `{"content":"x","is_completed":true}`},
		{name: "unknown fields ignored", body: `{"id":7,"content":"x"}`},
		{name: "empty body", body: "", wantErr: true, wantLoc: []string{"body"}, wantType: "missing"},
		{name: "malformed", body: `{"content":`, wantErr: true, wantLoc: []string{"body"}, wantType: "json_invalid"},
		{name: "not json", body: `hello`, wantErr: true, wantLoc: []string{"body"}, wantType: "json_invalid"},
		{name: "trailing whitespace", body: "{\"content\":\"x\"}\n  "},
		{
			name:     "trailing garbage",
			body:     `{"content":"a"} trailing`,
			wantErr:  true,
			wantLoc:  []string{"body"},
			wantType: "json_invalid",
		},
		{
			name:     "concatenated objects",
			body:     `{"content":"a"}{"content":"b"}`,
			wantErr:  true,
			wantLoc:  []string{"body"},
			wantType: "json_invalid",
		},
		{
			name:     "wrong type",
			body:     `{"content": 42}`,
			wantErr:  true,
			wantLoc:  []string{"body", "content"},
			wantType: "type_error",
		},
		{
			name:     "wrong bool type",
			body:     `{"content": "x", "is_completed": "yes"}`,
			wantErr:  true,
			wantLoc:  []string{"body", "is_completed"},
			wantType: "type_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var p payload
			err := Decode(httptest.NewRecorder(), r, &p)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var verr *Error
			require.True(t, errors.As(err, &verr), "want *Error, got %T", err)
			assert.Equal(t, tt.wantLoc, verr.Fields[0].Loc)
			assert.Equal(t, tt.wantType, verr.Fields[0].Type)
		})
	}
}

func TestDecode_BodyTooLarge(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "oversized value",
			body: `{"content":"` + strings.Repeat("a", MaxBodyBytes) + `"}`,
		},
		{
			name: "oversized tail",
			body: `{"content":"a"}` + strings.Repeat(" ", MaxBodyBytes),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var p payload
			err := Decode(httptest.NewRecorder(), r, &p)
			assert.ErrorIs(t, err, ErrBodyTooLarge)
		})
	}
}

func TestError_Message(t *testing.T) {
	err := NewError([]string{"path", "todo_id"}, "must be a valid integer", "int_parsing")
	assert.Equal(t, "validation failed: path.todo_id must be a valid integer", err.Error())
}
