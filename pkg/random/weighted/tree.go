package weighted

import (
	"github.com/buildbarn/bb-random/pkg/random"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrInvalidWeight is returned when a weight is negative, not a
	// number or infinite.
	ErrInvalidWeight = status.Error(codes.InvalidArgument, "Weight is negative, not a number or infinite")
	// ErrOverflow is returned when the total weight of a tree can
	// no longer be represented.
	ErrOverflow = status.Error(codes.OutOfRange, "Total weight overflows")
	// ErrIndexOutOfRange is returned when referring to an element
	// that is not part of the tree.
	ErrIndexOutOfRange = status.Error(codes.OutOfRange, "Index out of range")
	// ErrNoItem is returned when sampling an empty tree.
	ErrNoItem = status.Error(codes.FailedPrecondition, "Tree contains no weights")
	// ErrAllWeightsZero is returned when sampling a tree whose
	// total weight is zero.
	ErrAllWeightsZero = status.Error(codes.FailedPrecondition, "All weights are zero")
)

// Tree of weights, used to select indices at random with a probability
// proportional to the weight stored at that index. Weights can be
// added, removed and updated after construction.
//
// The tree is stored as an implicit complete binary tree, where the
// children of element i are stored at indices 2i+1 and 2i+2. For every
// element, the subtotal of its subtree is stored. Constructing a tree
// takes O(n) time, while sampling and all mutating operations take
// O(log n) time.
//
// Operations that fail leave the tree unmodified. Trees do not permit
// concurrent access.
type Tree[W Weight] struct {
	subtotals []W
}

// NewTree creates a Tree containing a sequence of weights.
func NewTree[W Weight](weights []W) (*Tree[W], error) {
	subtotals := make([]W, len(weights))
	for i, weight := range weights {
		if !isValidWeight(weight) {
			return nil, ErrInvalidWeight
		}
		subtotals[i] = weight
	}
	// Children are stored after their parents. Walking backwards
	// ensures the subtotal of every element is complete by the time
	// it gets added to the subtotal of its parent.
	for i := len(subtotals) - 1; i > 0; i-- {
		parent := (i - 1) / 2
		sum, ok := checkedAdd(subtotals[parent], subtotals[i])
		if !ok {
			return nil, ErrOverflow
		}
		subtotals[parent] = sum
	}
	return &Tree[W]{subtotals: subtotals}, nil
}

// Len returns the number of weights stored in the tree.
func (t *Tree[W]) Len() int {
	return len(t.subtotals)
}

// IsEmpty returns true if the tree contains no weights.
func (t *Tree[W]) IsEmpty() bool {
	return len(t.subtotals) == 0
}

// CanSample returns true if the total weight of the tree is positive,
// meaning that Sample() succeeds.
func (t *Tree[W]) CanSample() bool {
	return len(t.subtotals) > 0 && t.subtotals[0] > 0
}

func (t *Tree[W]) subtotal(index int) W {
	if index < len(t.subtotals) {
		return t.subtotals[index]
	}
	return 0
}

func (t *Tree[W]) get(index int) W {
	return t.subtotals[index] - t.subtotal(2*index+1) - t.subtotal(2*index+2)
}

// Get the weight stored at an index.
func (t *Tree[W]) Get(index int) (W, error) {
	if index < 0 || index >= len(t.subtotals) {
		return 0, ErrIndexOutOfRange
	}
	return t.get(index), nil
}

// Push appends a weight to the tree.
func (t *Tree[W]) Push(weight W) error {
	if !isValidWeight(weight) {
		return ErrInvalidWeight
	}
	if len(t.subtotals) > 0 {
		if _, ok := checkedAdd(t.subtotals[0], weight); !ok {
			return ErrOverflow
		}
	}
	index := len(t.subtotals)
	t.subtotals = append(t.subtotals, weight)
	// No ancestor exceeds the total weight, so none of these
	// additions can overflow.
	for index != 0 {
		index = (index - 1) / 2
		t.subtotals[index] += weight
	}
	return nil
}

// Pop removes the last weight from the tree and returns it. False is
// returned if the tree is empty.
func (t *Tree[W]) Pop() (W, bool) {
	if len(t.subtotals) == 0 {
		return 0, false
	}
	// The last element never has any children, meaning its
	// subtotal is equal to its weight.
	weight := t.subtotals[len(t.subtotals)-1]
	t.subtotals = t.subtotals[:len(t.subtotals)-1]
	index := len(t.subtotals)
	for index != 0 {
		index = (index - 1) / 2
		t.subtotals[index] -= weight
	}
	return weight, true
}

// Update the weight stored at an index.
func (t *Tree[W]) Update(index int, weight W) error {
	if !isValidWeight(weight) {
		return ErrInvalidWeight
	}
	if index < 0 || index >= len(t.subtotals) {
		return ErrIndexOutOfRange
	}
	current := t.get(index)
	if weight == current {
		return nil
	}

	// Increases and decreases are applied separately, so that the
	// difference never becomes negative. This prevents wrapping
	// for unsigned weights.
	if weight > current {
		difference := weight - current
		if _, ok := checkedAdd(t.subtotals[0], difference); !ok {
			return ErrOverflow
		}
		t.subtotals[index] += difference
		for index != 0 {
			index = (index - 1) / 2
			t.subtotals[index] += difference
		}
	} else {
		difference := current - weight
		t.subtotals[index] -= difference
		for index != 0 {
			index = (index - 1) / 2
			t.subtotals[index] -= difference
		}
	}
	return nil
}

// sampleBelow draws a uniformly distributed weight in range [0, total).
func sampleBelow[W Weight](source random.Source, total W) W {
	if isIntegral[W]() {
		return W(random.Uint64N(source, uint64(total)))
	}
	for {
		// Multiplication may round up to the total.
		if v := W(random.Float64(source) * float64(total)); v < total {
			return v
		}
	}
}

// Sample selects an index at random, with a probability proportional
// to the weight stored at that index. Elements with a weight of zero
// are never selected.
func (t *Tree[W]) Sample(source random.Source) (int, error) {
	if len(t.subtotals) == 0 {
		return 0, ErrNoItem
	}
	total := t.subtotals[0]
	if total == 0 {
		return 0, ErrAllWeightsZero
	}

	target := sampleBelow(source, total)
	index := 0
	for {
		// Maybe descend into the left subtree.
		left := 2*index + 1
		leftSubtotal := t.subtotal(left)
		if target < leftSubtotal {
			index = left
			continue
		}
		target -= leftSubtotal

		// Maybe descend into the right subtree.
		right := 2*index + 2
		rightSubtotal := t.subtotal(right)
		if target < rightSubtotal {
			index = right
			continue
		}
		target -= rightSubtotal

		// The target lies within the weight of the current
		// element.
		return index, nil
	}
}
