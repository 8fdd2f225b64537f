// Package guard sequences budget enforcement and cost recording around a
// provider API call.
//
// The contract is an explicit two-step at the call site rather than a
// transparent client wrapper: check the budget before issuing a call,
// record token usage after it completes. Do bundles both steps:
//
//	g := guard.New(led, mgr)
//
//	ev, err := g.Do(ctx, "gpt-4o", func(ctx context.Context) (guard.Usage, error) {
//	    resp, err := client.Complete(ctx, req)
//	    if err != nil {
//	        return guard.Usage{}, err
//	    }
//	    return guard.Usage{
//	        InputTokens:  resp.Usage.PromptTokens,
//	        OutputTokens: resp.Usage.CompletionTokens,
//	    }, nil
//	})
//
// A guard holds no state of its own; it may be shared freely across
// goroutines because the ledger and manager it delegates to are themselves
// safe for concurrent use.
package guard
