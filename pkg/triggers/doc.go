// Package triggers ships the trigger events bundled with gearbox. Each file
// registers its own types from init(); importing the package is all a host
// needs to make them dispatchable.
package triggers
