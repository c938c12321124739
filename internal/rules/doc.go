// Package rules holds one rule table per form.
//
// The recruiter and user tables look alike but are kept apart: they check
// names differently, use different email and password predicates, and treat
// the LinkedIn field differently. Both stop at the first failure because the
// client shows a single alert. The application table reports every failing
// field, since the client renders messages inline next to each input.
package rules
