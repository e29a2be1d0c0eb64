package ir

import "fmt"

// Container contract. Every method below works on array or object
// nodes and reports ErrNotAContainer when invoked on a scalar, never
// silently no-oping.

// Len returns the number of elements (array) or entries (object).
func (y *Node) Len() (int, error) {
	switch y.Type {
	case ArrayType:
		return len(y.Values), nil
	case ObjectType:
		return len(y.Fields), nil
	default:
		return 0, fmt.Errorf("%w: Len on %s", ErrNotAContainer, y.Type)
	}
}

// Clear removes all elements or entries, keeping the node's kind.
func (y *Node) Clear() error {
	switch y.Type {
	case ArrayType:
		y.Values = nil
		return nil
	case ObjectType:
		y.Fields = nil
		y.Values = nil
		return nil
	default:
		return fmt.Errorf("%w: Clear on %s", ErrNotAContainer, y.Type)
	}
}

// Append adds v to the end of an array. Null elements are permitted;
// a nil v appends a NullType node.
func (y *Node) Append(v *Node) error {
	if y.Type != ArrayType {
		return fmt.Errorf("%w: Append on %s", ErrNotAContainer, y.Type)
	}
	if v == nil {
		v = Null()
	}
	v.Parent = y
	v.ParentIndex = len(y.Values)
	y.Values = append(y.Values, v)
	return nil
}

// At returns the array element at index i.
func (y *Node) At(i int) (*Node, error) {
	if y.Type != ArrayType {
		return nil, fmt.Errorf("%w: At on %s", ErrNotAContainer, y.Type)
	}
	if i < 0 || i >= len(y.Values) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndex, i, len(y.Values))
	}
	return y.Values[i], nil
}

// SetAt replaces the array element at index i.
func (y *Node) SetAt(i int, v *Node) error {
	if y.Type != ArrayType {
		return fmt.Errorf("%w: SetAt on %s", ErrNotAContainer, y.Type)
	}
	if i < 0 || i >= len(y.Values) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndex, i, len(y.Values))
	}
	if v == nil {
		v = Null()
	}
	v.Parent = y
	v.ParentIndex = i
	y.Values[i] = v
	return nil
}

// DeleteAt removes the array element at index i.
func (y *Node) DeleteAt(i int) error {
	if y.Type != ArrayType {
		return fmt.Errorf("%w: DeleteAt on %s", ErrNotAContainer, y.Type)
	}
	if i < 0 || i >= len(y.Values) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndex, i, len(y.Values))
	}
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
	for j := i; j < len(y.Values); j++ {
		y.Values[j].ParentIndex = j
	}
	return nil
}

// Contains reports whether an array holds an element Equal to v.
func (y *Node) Contains(v *Node) (bool, error) {
	if y.Type != ArrayType {
		return false, fmt.Errorf("%w: Contains on %s", ErrNotAContainer, y.Type)
	}
	for _, e := range y.Values {
		if Equal(e, v) {
			return true, nil
		}
	}
	return false, nil
}

// Lookup returns the object value under key, ErrNoKey on a miss.
func (y *Node) Lookup(key *Node) (*Node, error) {
	if y.Type != ObjectType {
		return nil, fmt.Errorf("%w: Lookup on %s", ErrNotAContainer, y.Type)
	}
	if i := findKey(y, key); i >= 0 {
		return y.Values[i], nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoKey, KeyString(key))
}

// Field is Lookup with a string key.
func (y *Node) Field(name string) (*Node, error) {
	return y.Lookup(FromString(name))
}

// ContainsKey reports whether an object has an entry under key.
func (y *Node) ContainsKey(key *Node) (bool, error) {
	if y.Type != ObjectType {
		return false, fmt.Errorf("%w: ContainsKey on %s", ErrNotAContainer, y.Type)
	}
	return findKey(y, key) >= 0, nil
}

// Set inserts or replaces the object entry under key. Insertion order
// is preserved; a replaced entry keeps its position.
func (y *Node) Set(key, v *Node) error {
	if y.Type != ObjectType {
		return fmt.Errorf("%w: Set on %s", ErrNotAContainer, y.Type)
	}
	if v == nil {
		v = Null()
	}
	if i := findKey(y, key); i >= 0 {
		v.Parent = y
		v.ParentIndex = i
		if key.Type == StringType {
			v.ParentField = key.String
		}
		y.Values[i] = v
		return nil
	}
	i := len(y.Fields)
	key.Parent = y
	key.ParentIndex = i
	v.Parent = y
	v.ParentIndex = i
	if key.Type == StringType {
		v.ParentField = key.String
	}
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
	return nil
}

// SetField is Set with a string key.
func (y *Node) SetField(name string, v *Node) error {
	return y.Set(FromString(name), v)
}

// Delete removes the object entry under key, ErrNoKey on a miss.
func (y *Node) Delete(key *Node) error {
	if y.Type != ObjectType {
		return fmt.Errorf("%w: Delete on %s", ErrNotAContainer, y.Type)
	}
	i := findKey(y, key)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNoKey, KeyString(key))
	}
	y.Fields = append(y.Fields[:i], y.Fields[i+1:]...)
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
	for j := i; j < len(y.Fields); j++ {
		y.Fields[j].ParentIndex = j
		y.Values[j].ParentIndex = j
	}
	return nil
}
