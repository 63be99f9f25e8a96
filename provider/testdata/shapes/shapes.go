// Package shapes is loaded by the source provider tests.
package shapes

// Shape is implemented by every closed figure.
type Shape interface {
	Area() float64
	scale(f float64)
}

// Point is a position on the integer grid.
type Point struct {
	X, Y  int
	label string
}

// PointAlias names Point under another name.
type PointAlias = Point

// NewPoint returns the point at x, y.
func NewPoint(x, y int) *Point {
	return &Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Move translates p in place.
func (p *Point) Move(dx, dy int32) {
	p.X += int(dx)
	p.Y += int(dy)
}

func (p *Point) reset() {
	*p = Point{}
}

// Circle is a round Shape.
type Circle struct {
	Point
	Radius float64
}

// Area implements Shape.
func (c Circle) Area() float64 {
	return 3.14159 * c.Radius * c.Radius
}

func (c Circle) scale(f float64) {}

// Box holds items of one type.
type Box[T any] struct {
	Items []T
}

// NewBox returns an empty box.
func NewBox[T any]() *Box[T] {
	return &Box[T]{}
}

// Put adds item to the box.
func (b *Box[T]) Put(item T) {
	b.Items = append(b.Items, item)
}

// Merge adds the items of other.
func (b *Box[T]) Merge(other Box[T]) {
	b.Items = append(b.Items, other.Items...)
}

// Labels maps keys to display strings.
type Labels map[string]string

// Lookup returns the label for key.
func (l Labels) Lookup(key string, fallback *string) string {
	if v, ok := l[key]; ok {
		return v
	}
	if fallback != nil {
		return *fallback
	}
	return ""
}

type registry struct {
	Shapes []Shape
}

// NewNamed is not a constructor: no type is called Named.
func NewNamed() Point {
	return Point{}
}
