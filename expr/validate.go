package expr

import (
	"fmt"

	"github.com/cwbudde/algo-expr/internal/isa"
)

// Validate checks that every array leaf and store destination in root can
// be accessed over [0,n). The engine only calls it when debug checking is
// enabled; mismatched lengths are otherwise the caller's responsibility.
func Validate[T isa.Float](root Expr[T], n int) error {
	return validate(root.node(), n)
}

func validate[T isa.Float](nd *Node[T], n int) error {
	switch nd.tag {
	case TagArray:
		if len(nd.data) < n {
			return fmt.Errorf("%w: array has %d elements, need %d", ErrLengthMismatch, len(nd.data), n)
		}
	case TagStore:
		if len(nd.data) < n {
			return fmt.Errorf("%w: store destination has %d elements, need %d", ErrLengthMismatch, len(nd.data), n)
		}
	}
	if nd.left != nil {
		if err := validate(nd.left, n); err != nil {
			return err
		}
	}
	if nd.right != nil {
		return validate(nd.right, n)
	}
	return nil
}
