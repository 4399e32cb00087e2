package faas

// InputKind tags the shape of an Input.
type InputKind int

const (
	// InputOptions is an options mapping. The zero Input is an empty mapping.
	InputOptions InputKind = iota
	// InputID is a bare resource identifier.
	InputID
	// InputBatch is a list of inputs handled independently.
	InputBatch
)

// Input is the argument of the identifier based operations. It is one of a
// bare identifier, an options mapping or a batch of inputs; a batch fans the
// operation out and yields one result per element, in order.
type Input struct {
	kind    InputKind
	id      string
	options Options
	items   []Input
}

// ID builds an input from a bare identifier such as "hello", "pkg/hello",
// "/ns/hello" or "/ns/pkg/hello".
func ID(id string) Input {
	return Input{kind: InputID, id: id}
}

// Opts builds an input from an options mapping.
func Opts(options Options) Input {
	return Input{kind: InputOptions, options: options}
}

// Batch builds an input that applies the operation to every item.
func Batch(items ...Input) Input {
	return Input{kind: InputBatch, items: items}
}

// IDs is shorthand for a batch of bare identifiers.
func IDs(ids ...string) Input {
	items := make([]Input, 0, len(ids))
	for _, id := range ids {
		items = append(items, ID(id))
	}

	return Batch(items...)
}

// Kind returns the shape of the input.
func (in Input) Kind() InputKind {
	return in.kind
}

// Identifier returns the bare identifier of an InputID.
func (in Input) Identifier() string {
	return in.id
}

// Options returns the mapping of an InputOptions.
func (in Input) Options() Options {
	return in.options
}

// Items returns the elements of an InputBatch.
func (in Input) Items() []Input {
	return in.items
}

// Normalize returns the canonical options of a single input: a bare
// identifier is wrapped under key and an absent mapping becomes empty.
// The returned options are a copy and may be modified.
func (in Input) Normalize(key string) Options {
	if in.kind == InputID {
		return Options{key: in.id}
	}

	if in.options == nil {
		return Options{}
	}

	return in.options.Clone()
}
