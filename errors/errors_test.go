package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrapf(ErrUnknownCode, "code %q", "ZZ")

	assert.True(t, Is(err, ErrUnknownCode))
	assert.False(t, Is(err, ErrUnknownEmphasizer))
	assert.Equal(t, `code "ZZ": unknown annotation code`, err.Error())
}

func TestHintsSurviveWrapping(t *testing.T) {
	err := WithHint(Wrap(ErrUnknownEmphasizer, "emphasizer \"!\""), "valid emphasizers are + - *")
	err = Wrap(err, "failed to add note")

	require.Len(t, GetAllHints(err), 1)
	assert.Equal(t, "valid emphasizers are + - *", GetAllHints(err)[0])
	assert.True(t, Is(err, ErrUnknownEmphasizer))
}

func TestIsNotFoundError(t *testing.T) {
	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsNotFoundError(New("other")))
	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(NewNotFoundError("no entry named %q", "Foo")))
}

func TestIsInvalidRequestError(t *testing.T) {
	assert.False(t, IsInvalidRequestError(nil))
	assert.True(t, IsInvalidRequestError(NewInvalidRequestError("bad medium %q", "svg")))
	assert.Contains(t, NewInvalidRequestError("bad medium %q", "svg").Error(), `bad medium "svg"`)
}

type customError struct {
	msg string
}

func (e *customError) Error() string {
	return e.msg
}

func TestAs(t *testing.T) {
	original := &customError{msg: "custom"}
	wrapped := Wrap(original, "wrapped")

	var target *customError
	require.True(t, As(wrapped, &target))
	assert.Equal(t, "custom", target.msg)
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
}

func ExampleWithHint() {
	err := Wrapf(ErrUnknownCode, "code %q", "ZZ")
	err = WithHint(err, "run 'can list' to see valid codes")

	fmt.Println(err)
	fmt.Println(GetAllHints(err)[0])
	// Output:
	// code "ZZ": unknown annotation code
	// run 'can list' to see valid codes
}
