// Package async provides settle-once handles for computations that resolve
// independently, and two ways of combining them.
//
// A Handle is created Pending and settles exactly once, either Fulfilled
// with a value or Rejected with an error. The producer side typically looks
// as follows:
//
//	promise, handle := async.Create[T]()
//	go func() {
//	   v, err := someOperation()
//	   if err != nil {
//	      promise.Reject(err)
//	      return
//	   }
//	   promise.Fulfill(v)
//	}()
//	return handle
//
// Go does the same for a func(ctx) (T, error).
//
// All joins a fixed, ordered set of handles: it fulfils with the values in
// submission order once every handle fulfils, and rejects as soon as any
// handle rejects.
//
// Try and Flow run a sequential body inside a recovery scope. Await suspends
// the body until a handle settles; a rejection unwinds the rest of the body
// and hands the reason to the scope's catch function, after which control
// flow continues normally.
//
// Handles are backed by goroutines. There is no cancellation: a context only
// bounds how long a caller waits, never the computation it waits for.
package async
