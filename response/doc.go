// Package response implements the standard JSON response envelope.
//
// Every endpoint answers with the same shape:
//
//	{
//	  "success": bool,
//	  "message": string|null,
//	  "data":    T|null,
//	  "errors":  [{"code":..., "message":..., "field":..., "meta":...}]|null,
//	  "meta":    object|null,
//	  "code":    int
//	}
//
// Envelopes are built through the factories and never mutated:
//
//	response.Ok(user)
//	response.Ok(user, response.WithCode(http.StatusCreated))
//	response.NoContent()
//	response.FailWith(response.NewError("USER_SUSPENDED", "account is suspended"))
//	response.NewPage(users, page, pageSize, total)
//
// The write path decides per result whether wrapping is needed. A value that
// already implements Envelope is serialized as-is, so handlers that build
// envelopes themselves are never double-wrapped:
//
//	mux.HandleFunc("GET /v1/users/{id}", response.Wrap(func(r *http.Request) (any, error) {
//	    u, err := store.Find(r.PathValue("id"))
//	    if err != nil {
//	        return nil, problem.NewNotFound("user")
//	    }
//	    return u, nil
//	}))
//
// Failure envelopes are usually produced from RFC 9457 problems via
// FromProblem; see the problem package.
package response
