package lattice

// Singleton is the one-element lattice: join, meet, min, and max all
// coincide with its single value.
type Singleton struct{}

func (Singleton) integrity() {}

// Join returns the receiver, the lattice's only value.
func (s Singleton) Join(Integrity) Integrity { return s }

// Meet returns the receiver, the lattice's only value.
func (s Singleton) Meet(Integrity) Integrity { return s }

// Compare always reports Equivalent: Singleton has exactly one element.
func (Singleton) Compare(Integrity) Order { return Equivalent }

// Equal always reports true.
func (Singleton) Equal(Integrity) bool { return true }

// Min returns the (only) element.
func (s Singleton) Min() Integrity { return s }

// Max returns the (only) element.
func (s Singleton) Max() Integrity { return s }

func (Singleton) String() string { return "singleton" }
