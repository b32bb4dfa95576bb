package response

import (
	"github.com/JenilSojitra/GenericApiReponse/problem"
)

// FromProblem converts an RFC 9457 problem into a failure envelope.
//
// The envelope message is the problem title and the envelope code is the
// problem status. When the problem carries field errors each one becomes an
// envelope Error; otherwise a single Error is built whose message is the
// detail, falling back to the title and then to the literal "Error", and
// whose code is the problem type verbatim (null when the type is empty).
func FromProblem(p *problem.Details, opts ...Option) *Response[any] {
	var errs []Error
	if len(p.Errors) > 0 {
		errs = make([]Error, 0, len(p.Errors))
		for _, fe := range p.Errors {
			e := Error{Message: fe.Message}
			if p.Type != "" {
				t := p.Type
				e.Code = &t
			}
			if fe.Field != "" {
				f := fe.Field
				e.Field = &f
			}
			errs = append(errs, e)
		}
	} else {
		msg := p.Detail
		if msg == "" {
			msg = p.Title
		}
		if msg == "" {
			msg = "Error"
		}
		e := Error{Message: msg}
		if p.Type != "" {
			t := p.Type
			e.Code = &t
		}
		errs = []Error{e}
	}

	base := make([]Option, 0, 2+len(opts))
	if p.Title != "" {
		base = append(base, WithMessage(p.Title))
	}
	if p.Status != 0 {
		base = append(base, WithCode(p.Status))
	}
	return Fail(errs, append(base, opts...)...)
}
