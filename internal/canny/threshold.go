package canny

import "fmt"

// pixelState tracks a pixel through one Threshold call.
type pixelState uint8

const (
	unvisited pixelState = iota
	strongEdge
	weakLinked
	suppressed
)

// Edge and NoEdge are the two values a thresholded mask contains.
const (
	Edge   uint8 = 255
	NoEdge uint8 = 0
)

// ValidateThresholds checks that low < high.
func ValidateThresholds(low, high uint8) error {
	if low >= high {
		return fmt.Errorf("%w: low threshold %d must be below high threshold %d", ErrInvalidParameter, low, high)
	}
	return nil
}

// Threshold applies hysteresis to a suppressed magnitude grid.
//
// Pixels >= high seed an 8-connected trace. The trace marks every reachable
// pixel > low as an edge and stops at pixels <= low. Pixels never reached
// from a seed are cleared, so the result contains only Edge and NoEdge.
func Threshold(nms *Grid[uint8], low, high uint8) (*Grid[uint8], error) {
	if err := ValidateThresholds(low, high); err != nil {
		return nil, err
	}
	if nms == nil {
		return nil, fmt.Errorf("%w: threshold: nil grid", ErrInvalidParameter)
	}
	return hysteresis(nms, low, high, nil), nil
}

// hysteresis runs the seed scan in the given order of flat pixel indices, or
// row-major when order is nil. The final mask does not depend on the order.
func hysteresis(nms *Grid[uint8], low, high uint8, order []int) *Grid[uint8] {
	w, h := nms.Width, nms.Height
	state := make([]pixelState, len(nms.Pix))
	out := NewGrid[uint8](w, h)

	var stack []int
	trace := func(seed int) {
		stack = append(stack[:0], seed)
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if state[i] != unvisited {
				continue
			}

			v := nms.Pix[i]
			if v <= low {
				state[i] = suppressed
				continue
			}
			if v >= high {
				state[i] = strongEdge
			} else {
				state[i] = weakLinked
			}
			out.Pix[i] = Edge

			x, y := i%w, i/w
			for ny := y - 1; ny <= y+1; ny++ {
				if ny < 0 || ny >= h {
					continue
				}
				for nx := x - 1; nx <= x+1; nx++ {
					if nx < 0 || nx >= w {
						continue
					}
					if n := ny*w + nx; state[n] == unvisited {
						stack = append(stack, n)
					}
				}
			}
		}
	}

	visit := func(i int) {
		if state[i] != unvisited {
			return
		}
		switch v := nms.Pix[i]; {
		case v >= high:
			trace(i)
		case v <= low:
			state[i] = suppressed
		}
	}

	if order == nil {
		for i := range nms.Pix {
			visit(i)
		}
	} else {
		for _, i := range order {
			visit(i)
		}
	}

	// Pixels still unvisited are weak edges with no path to a strong one;
	// they were never written and remain NoEdge.
	return out
}
