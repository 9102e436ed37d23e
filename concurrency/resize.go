// concurrency/resize.go
package concurrency

// ResizeSemaphore adjusts the size of the semaphore used to control concurrency. This method creates a new
// semaphore with the specified new size and transfers any held permits into it so that in-flight requests
// keep their slots. The old semaphore is left to the garbage collector rather than closed, so a sender
// still blocked on it fails by acquisition timeout instead of panicking.
//
// This function must be called with ch.lock held, as done by ScaleUp and ScaleDown, to keep the semaphore
// swap consistent with the tracked capacity.
func (ch *ConcurrencyHandler) ResizeSemaphore(newSize int64) {
	newSem := make(chan struct{}, newSize)

	// Transfer permits from the old semaphore to the new one.
	for {
		select {
		case permit := <-ch.sem:
			select {
			case newSem <- permit:
				// Permit transferred to new semaphore.
			default:
				// New semaphore is full, put permit back to the old one to allow ongoing operations to complete.
				ch.sem <- permit
			}
		default:
			// No more permits to transfer.
			ch.sem = newSem
			ch.currentCapacity = newSize
			return
		}
	}
}
