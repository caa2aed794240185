// Package registry collects transition installers from anywhere in a program
// and materializes them into a dispatch.Table at startup.
//
// Trigger packages register their types from init():
//
//	func init() {
//	    registry.RegisterSimple[Honk]()
//	    registry.Install[DoorOpened, transition.NoEvent, PlaySound, transition.NoEvent]()
//	}
//
// Go runs the init functions of every linked package before main, so the host
// only has to import the trigger packages (a blank import is enough) and call
// Materialize once during startup. A package that is never imported is never
// linked and its types are not registered.
//
// Hosts that prefer an explicit manifest can skip the default registry and
// pass records to Build directly.
package registry
