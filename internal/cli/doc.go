// Package cli implements the interactive WealthWise terminal client: a
// read–eval–print loop over the account manager, the conversation store,
// and the chat orchestrator.
package cli
