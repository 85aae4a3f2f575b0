// Package hw defines the core data model for gatewire: typed hardware
// values built from signal terminals. A Value is either a single Terminal
// (a leaf signal with a width and a direction) or an aggregate of them, a
// named Record or an indexed Vec. Field declaration order is significant
// throughout: it determines default naming and the positional
// correspondence used by the view engine in pkg/view.
package hw
