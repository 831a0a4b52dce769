// Package mocks provides test doubles for ports interfaces.
//
// These mocks are designed to be simple, thread-safe, in-memory implementations
// suitable for unit testing. Each mock provides:
//
//   - Default behavior that returns reasonable test values
//   - Callback functions (xxxFn) for customizing behavior per test
//   - Clear/Reset methods for test isolation
//
// # Usage Example
//
//	func TestMyEngine(t *testing.T) {
//		store := mocks.NewKeyValueStore()
//		eng := engine.New(cfg, classifier, store, logger)
//		// ... test engine behavior
//	}
package mocks
