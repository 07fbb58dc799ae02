package result

// cell multiplexes the lifetime of one T or one E behind a discriminant.
// Exactly one slot is live; the other always holds its zero value so that a
// dead payload never keeps references reachable.
//
// The get accessors are unchecked: reading the slot that does not match tag
// yields a zero value. Only Result calls them, and only after checking tag.
type cell[T, E any] struct {
	ok  T
	err E
	tag Kind
}

// constructOk activates the success slot. The cell must be uninitialised.
func (c *cell[T, E]) constructOk(v T) {
	c.ok = v
	c.tag = KindOk
}

// constructErr activates the failure slot. The cell must be uninitialised.
func (c *cell[T, E]) constructErr(e E) {
	c.err = e
	c.tag = KindErr
}

func (c *cell[T, E]) kind() Kind {
	return c.tag
}

func (c *cell[T, E]) okRef() *T {
	return &c.ok
}

func (c *cell[T, E]) errRef() *E {
	return &c.err
}

func (c *cell[T, E]) getOk() T {
	return c.ok
}

func (c *cell[T, E]) getErr() E {
	return c.err
}

// destroy releases whichever payload is live, guided by tag.
func (c *cell[T, E]) destroy() {
	switch c.tag {
	case KindOk:
		var zero T
		c.ok = zero
	case KindErr:
		var zero E
		c.err = zero
	}
}

// assign replaces the contents of c with those of src: the old payload is
// destroyed before the new one is constructed, even when both share a kind.
func (c *cell[T, E]) assign(src *cell[T, E]) {
	if c == src {
		return
	}
	c.destroy()
	switch src.tag {
	case KindOk:
		c.constructOk(src.ok)
	default:
		c.constructErr(src.err)
	}
}

// take moves the live payload out of c and leaves c as a default Ok cell.
func (c *cell[T, E]) take() cell[T, E] {
	out := *c
	c.destroy()
	c.tag = KindOk
	return out
}
