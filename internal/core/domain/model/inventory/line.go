package inventory

import (
	"fmt"
	"slices"
	"strings"

	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/pkg/errs"
)

// Line is a requested quantity of one product.
type Line struct {
	productID kernel.UUID
	quantity  int
}

func NewLine(productID kernel.UUID, quantity int) (Line, error) {
	if err := productID.Validate(); err != nil {
		return Line{}, errs.NewValueIsRequiredErrorWithCause("product id", err)
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return Line{productID: productID, quantity: quantity}, nil
}

func (l Line) ProductID() kernel.UUID { return l.productID }
func (l Line) Quantity() int { return l.quantity }

// Coalesce sums quantities of repeated products into one line each, keeping the
// order in which products first appear. Stock checks and decrements must run on
// the coalesced lines so that two lines for the same product are judged together.
func Coalesce(lines []Line) []Line {
	index := make(map[kernel.UUID]int, len(lines))
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		if i, ok := index[l.productID]; ok {
			out[i].quantity += l.quantity
			continue
		}
		index[l.productID] = len(out)
		out = append(out, l)
	}
	return out
}

// LockOrder coalesces lines and sorts them by product id. Every transaction
// that updates more than one inventory row walks them in this order, so two
// carts naming the same products never wait on each other's row locks.
func LockOrder(lines []Line) []Line {
	out := Coalesce(lines)
	slices.SortFunc(out, func(a, b Line) int {
		return strings.Compare(a.productID.String(), b.productID.String())
	})
	return out
}
