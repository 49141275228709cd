package shard

import "log"

// AssertInEngine panics with msg when cond is false, logging the
// message first. Gradient-hook callers may swallow the panic value
// silently; logging up front keeps the diagnostic visible regardless.
func AssertInEngine(cond bool, msg string) {
	if !cond {
		log.Println(msg)
		panic(msg)
	}
}
