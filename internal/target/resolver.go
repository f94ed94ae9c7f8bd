package target

// Resolution is the outcome of resolving a raw target: the total,
// validated tuple plus the record of every axis that was inferred
// rather than explicitly chosen.
type Resolution struct {
	Target   Resolved
	Inferred []Inference
	// Entry is the matrix entry the tuple was validated against; it
	// carries derived values (default port) for the render context.
	Entry *Entry
}

// Explicit reports whether the named axis was supplied by the caller.
func (r *Resolution) Explicit(field string) bool {
	for _, inf := range r.Inferred {
		if inf.Field == field {
			return false
		}
	}
	return true
}

// Resolver turns a partial Raw target into a Resolution. Resolution is a
// pure function of (raw, matrix, default policy): identical inputs yield
// identical outputs regardless of call order or process.
type Resolver struct {
	matrix *Matrix
	// defaultLanguage is the configured fallback when the caller omits
	// the language entirely. Empty means no default policy applies and
	// an omitted language is an error.
	defaultLanguage Language
}

// NewResolver creates a Resolver over the given matrix.
func NewResolver(matrix *Matrix) *Resolver {
	return &Resolver{matrix: matrix}
}

// WithDefaultLanguage sets the language used when the raw target omits
// one. It never overrides an explicit language.
func (r *Resolver) WithDefaultLanguage(lang Language) *Resolver {
	r.defaultLanguage = lang
	return r
}

// Resolve applies the fixed resolution order: language, project type,
// matrix lookup, architecture, framework. Explicit values are never
// overwritten; inference only fills genuinely unset axes, and every
// inferred axis is recorded in the result.
func (r *Resolver) Resolve(raw Raw) (*Resolution, error) {
	res := &Resolution{}

	// Language: explicit, else configured default, else error.
	lang := raw.Language
	if lang == "" {
		if r.defaultLanguage == "" {
			return nil, &MissingFieldError{Field: "language"}
		}
		lang = r.defaultLanguage
		res.Inferred = append(res.Inferred, Inference{Field: "language", Value: string(lang)})
	}

	// Project type: explicit, else the language's default.
	typ := raw.Type
	if typ == "" {
		def, ok := r.matrix.DefaultType(lang)
		if !ok {
			return nil, &MissingFieldError{Field: "type"}
		}
		typ = def
		res.Inferred = append(res.Inferred, Inference{Field: "type", Value: string(typ)})
	}

	// The pair must exist in the matrix before any further axis is
	// considered; later steps assume a valid entry.
	entry, ok := r.matrix.Lookup(lang, typ)
	if !ok {
		return nil, &UnsupportedCombinationError{
			Language:       lang,
			Type:           typ,
			SupportedTypes: r.matrix.SupportedTypes(lang),
		}
	}

	// Architecture: explicit must be allowed; absent takes the default.
	arch := raw.Architecture
	if arch == "" {
		arch = entry.DefaultArchitecture
		res.Inferred = append(res.Inferred, Inference{Field: "architecture", Value: string(arch)})
	} else if !entry.AllowsArchitecture(arch) {
		return nil, &IncompatibleArchitectureError{
			Architecture: arch,
			Language:     lang,
			Type:         typ,
			Allowed:      entry.Architectures,
		}
	}

	// Framework: same rule. An explicit "none" counts as explicit and is
	// validated like any other value.
	fw := raw.Framework
	if !raw.FrameworkSet && fw == "" {
		fw = entry.DefaultFramework
		res.Inferred = append(res.Inferred, Inference{Field: "framework", Value: string(fw)})
	} else {
		if fw == "" {
			fw = FrameworkNone
		}
		if !entry.AllowsFramework(fw) {
			return nil, &IncompatibleFrameworkError{
				Framework: fw,
				Language:  lang,
				Type:      typ,
				Allowed:   entry.Frameworks,
			}
		}
	}

	res.Target = Resolved{Language: lang, Type: typ, Architecture: arch, Framework: fw}
	res.Entry = entry
	return res, nil
}
