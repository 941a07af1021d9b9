// Package plex renames episode files inside season folders to the
// S##E## convention Plex expects.
//
// A [Planner] lists one season directory and proposes a new name for every
// entry it can read two numbers from; an [Executor] applies an approved
// [Plan]. Neither walks the library: finding season folders is the job of
// package library.
//
// Number extraction is permissive. The first two numbers in a name are
// taken as season and episode with no further checks, so "Show 10bit 2.mkv"
// is proposed as "S10E02.mkv". Known false positive; the operator reviews
// every plan before anything is renamed.
package plex
