package shared

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

const (
	networkErrorPrefix  = "network error"
	encodingErrorPrefix = "encoding error"
	labelNotFoundPrefix = "label not found"
)

// NetworkError reports an unreachable host, a non-2xx status or a timed
// out transfer.
func NetworkError(url string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("%s: %s", networkErrorPrefix, url)).
		WithCause(cause)
}

// EncodingError reports a response body that is not valid UTF-8.
func EncodingError(url string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("%s: %s", encodingErrorPrefix, url)).
		WithCause(cause)
}

// LabelNotFoundError reports a page without a header cell whose text is
// exactly label.
func LabelNotFoundError(label string, url string) error {
	msg := fmt.Sprintf("%s: %q", labelNotFoundPrefix, label)
	if url != "" {
		msg += " on " + url
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(msg)
}

func IsNetworkError(err error) bool {
	return hasKind(err, errbuilder.CodeInternal, networkErrorPrefix)
}

func IsEncodingError(err error) bool {
	return hasKind(err, errbuilder.CodeInternal, encodingErrorPrefix)
}

func IsLabelNotFound(err error) bool {
	return hasKind(err, errbuilder.CodeNotFound, labelNotFoundPrefix)
}

// ErrorMessage returns the errbuilder message when err carries one, and
// err.Error() otherwise.
func ErrorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}

func hasKind(err error, code errbuilder.ErrCode, prefix string) bool {
	if err == nil {
		return false
	}
	return errbuilder.CodeOf(err) == code && strings.HasPrefix(ErrorMessage(err), prefix)
}
