package heap

import (
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Order is the direction a heap is ordered in.
type Order int

const (
	// Min keeps the smallest element at the top.
	Min Order = iota
	// Max keeps the largest element at the top.
	Max
)

func (o Order) String() string {
	switch o {
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return "Order(" + strconv.Itoa(int(o)) + ")"
	}
}

// options defines the ordering configuration of a heap.
type options[T any] struct {
	order    Order
	orderSet bool

	// byKey builds the comparator for a key extractor once the direction is known.
	byKey  func(order Order) func(a, b T) bool
	keySet bool

	less    func(a, b T) bool
	lessSet bool
}

// Option configures how a heap orders its elements.
type Option[T any] func(*options[T])

// WithOrder sets the direction of the heap. Defaults to Min.
func WithOrder[T any](order Order) Option[T] {
	return func(o *options[T]) {
		o.order = order
		o.orderSet = true
	}
}

// WithKey orders elements by the key returned from fn instead of the
// elements themselves. It combines with WithOrder.
func WithKey[T any, K constraints.Ordered](fn func(T) K) Option[T] {
	return func(o *options[T]) {
		o.keySet = true
		if fn == nil {
			o.byKey = nil
			return
		}
		o.byKey = func(order Order) func(a, b T) bool {
			if order == Max {
				return func(a, b T) bool { return fn(a) > fn(b) }
			}
			return func(a, b T) bool { return fn(a) < fn(b) }
		}
	}
}

// WithLess sets a custom comparator. less(a, b) must report whether a
// belongs closer to the top than b. It cannot be combined with WithOrder or
// WithKey.
func WithLess[T any](less func(a, b T) bool) Option[T] {
	return func(o *options[T]) {
		o.less = less
		o.lessSet = true
	}
}

// resolve picks the single comparator used for the lifetime of the heap.
// natural is the comparator for the element type itself and is nil when
// the type has no natural order.
func (o *options[T]) resolve(natural func(order Order) func(a, b T) bool) (func(a, b T) bool, error) {
	if o.orderSet && o.order != Min && o.order != Max {
		return nil, errors.Wrapf(ErrInvalidConfig, "order must be min or max, got %s", o.order)
	}

	if o.lessSet {
		if o.orderSet || o.keySet {
			return nil, errors.Wrap(ErrInvalidConfig, "comparator cannot be combined with order or key")
		}
		if o.less == nil {
			return nil, errors.Wrap(ErrInvalidConfig, "comparator is nil")
		}
		return o.less, nil
	}

	if o.keySet {
		if o.byKey == nil {
			return nil, errors.Wrap(ErrInvalidConfig, "key function is nil")
		}
		return o.byKey(o.order), nil
	}

	if natural == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "element type has no natural order, a key or comparator is required")
	}
	return natural(o.order), nil
}

func naturalOrder[T constraints.Ordered](order Order) func(a, b T) bool {
	if order == Max {
		return func(a, b T) bool { return a > b }
	}
	return func(a, b T) bool { return a < b }
}
