package models

// Registry is the set of models that make up the schema, in dependency order
// (parents before children). Build one at startup and hand it to whatever
// needs the table list; nothing in this package keeps a global copy.
type Registry struct {
	models []any
}

// NewRegistry returns a registry holding every marketplace table.
func NewRegistry() *Registry {
	return &Registry{
		models: []any{
			&User{},
			&UserLogin{},
			&Worker{},
			&Petitioner{},
			&Service{},
			&PetitionerService{},
			&EvaluationPetitioner{},
			&EvaluationWorker{},
			&Request{},
			&WorkerRequest{},
			&PetitionerReview{},
			&WorkerReview{},
		},
	}
}

// Models returns the registered models, parents first. The slice is a copy.
func (r *Registry) Models() []any {
	out := make([]any, len(r.models))
	copy(out, r.models)
	return out
}

// Reversed returns the registered models, children first, which is the
// order tables must be dropped in.
func (r *Registry) Reversed() []any {
	out := make([]any, len(r.models))
	for i, m := range r.models {
		out[len(r.models)-1-i] = m
	}
	return out
}

// TableNames lists the table of every registered model, parents first.
func (r *Registry) TableNames() []string {
	names := make([]string, 0, len(r.models))
	for _, m := range r.models {
		if t, ok := m.(interface{ TableName() string }); ok {
			names = append(names, t.TableName())
		}
	}
	return names
}
