// Package fixtures builds small, deterministic chipdb netlists for use
// across package tests: a chain, a star, and a grid topology, each
// stamped from a single minimal cell archetype so the generated shape
// is the only thing under test.
package fixtures
