package validation

// Rule is a single named check over a record of type T.
// Check returns the failure message, or "" when the record satisfies the rule.
type Rule[T any] struct {
	Name  string
	Field string
	Check func(T) string
}

// Runner evaluates an ordered rule table against a record.
// With StopOnFirstFailure set, evaluation ends at the first failing rule;
// otherwise every rule runs and every failure is collected.
type Runner[T any] struct {
	Rules              []Rule[T]
	StopOnFirstFailure bool
}

// Validate runs the rule table against record. It holds no state between calls.
func (r Runner[T]) Validate(record T) Verdict {
	var v Verdict
	for _, rule := range r.Rules {
		msg := rule.Check(record)
		if msg == "" {
			continue
		}
		v.Failures = append(v.Failures, Failure{
			Rule:    rule.Name,
			Field:   rule.Field,
			Message: msg,
		})
		if r.StopOnFirstFailure {
			break
		}
	}
	return v
}

// Exhaustive returns a copy of the runner that evaluates every rule. Inline
// checks use it so a touched field is reported even when an earlier field
// fails.
func (r Runner[T]) Exhaustive() Runner[T] {
	r.StopOnFirstFailure = false
	return r
}

// Failure is one violated rule.
type Failure struct {
	Rule    string `json:"rule"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Verdict is the outcome of a validation run. The zero value is Valid.
type Verdict struct {
	Failures []Failure `json:"failures,omitempty"`
}

// Valid reports whether no rule failed.
func (v Verdict) Valid() bool {
	return len(v.Failures) == 0
}

// Messages returns the failure messages in evaluation order.
func (v Verdict) Messages() []string {
	messages := make([]string, 0, len(v.Failures))
	for _, f := range v.Failures {
		messages = append(messages, f.Message)
	}
	return messages
}

// Fields maps each failing field to its first failure message.
func (v Verdict) Fields() map[string]string {
	fields := make(map[string]string, len(v.Failures))
	for _, f := range v.Failures {
		if _, seen := fields[f.Field]; !seen {
			fields[f.Field] = f.Message
		}
	}
	return fields
}

// Only narrows the verdict to failures on the given fields.
// Called with no fields, it returns the verdict unchanged.
func (v Verdict) Only(fields ...string) Verdict {
	if len(fields) == 0 {
		return v
	}
	keep := make(map[string]bool, len(fields))
	for _, f := range fields {
		keep[f] = true
	}

	var narrowed Verdict
	for _, f := range v.Failures {
		if keep[f.Field] {
			narrowed.Failures = append(narrowed.Failures, f)
		}
	}
	return narrowed
}
