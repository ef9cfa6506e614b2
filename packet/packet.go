package packet

// Packet is the sealed union of every decoded packet body. Header()
// returns the shared prefix; packetMarker keeps the interface from being
// implemented outside this package, mirroring a closed sum type.
type Packet interface {
	Header() Header
	packetMarker()
}
