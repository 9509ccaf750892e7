// Package hypothesis is a typed client for the Hypothesis Web API v1.0.0
// (https://h.readthedocs.io/en/latest/api-reference/v1/). It covers the
// API-key authorized endpoints for annotations (create / update / search /
// fetch / delete / flag / hide / show), groups (list / create / fetch /
// update / members / leave) and the user profile, plus concurrent bulk
// variants of the single-item calls.
//
// Credentials are a username and a personal developer key; see
// https://h.readthedocs.io/en/latest/api/authorization/ on obtaining one.
// Construct a client directly or from the HYPOTHESIS_NAME and
// HYPOTHESIS_KEY environment variables:
//
//	client, err := hypothesis.FromEnv(ctx)
//	if err != nil {
//		return err
//	}
//	created, err := client.CreateAnnotation(ctx, &hypothesis.InputAnnotation{
//		URI:  "https://www.example.com",
//		Text: "this is a comment",
//		Target: &hypothesis.Target{
//			Source: "https://www.example.com",
//			Selector: []hypothesis.Selector{
//				hypothesis.NewQuoteSelector("exact text to highlight", "prefix of text", "suffix of text"),
//			},
//		},
//		Tags: []string{"tag1", "tag2"},
//	})
//
// The client is stateless between calls and safe for concurrent use; all
// calls share one connection-reuse transport. Failed calls are never
// retried, and every failure is typed: *APIError for a recognizable error
// response, *TransportError for network failures, *DecodeError for bodies
// matching no known shape.
package hypothesis
