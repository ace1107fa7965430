// Package events provides types and interfaces for publishing task lifecycle
// events.
//
// Services emit events without knowing which handlers will process them.
// The primary components are:
// - TaskEvent: Records a change to a single task
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
