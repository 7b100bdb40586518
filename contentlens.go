// Package contentlens provides semantic analysis of web content. It
// fetches pages, strips them to readable text, sends the text to an
// LLM chat endpoint for categorization, sentiment and quality scoring,
// and aggregates the replies into structured results.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g. http/,
// goquery/, openai/, sqlite/).
package contentlens
