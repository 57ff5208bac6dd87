package interp

// stopEpsilon is the distance within which progress counts as sitting on a stop.
const stopEpsilon = 1e-6

// Virtual stops carry this index; they are never reported to hooks.
const virtualStopIndex = -1
