// Package wol builds and broadcasts Wake-on-LAN magic packets.
package wol

import (
	"bytes"
	"fmt"
	"net"
)

const (
	// defaultTarget is the limited broadcast address with the conventional
	// discard port used for Wake-on-LAN.
	defaultTarget = "255.255.255.255:9"

	macLen    = 6
	repeats   = 16
	packetLen = macLen + repeats*macLen // 102 bytes
)

// MagicPacket builds the 102-byte Wake-on-LAN payload for a 6-byte hardware
// address: six 0xFF bytes followed by the address repeated sixteen times. The
// address value itself is not validated; WoL accepts any value.
func MagicPacket(mac net.HardwareAddr) ([]byte, error) {
	if len(mac) != macLen {
		return nil, fmt.Errorf("hardware address must be %d bytes, got %d", macLen, len(mac))
	}

	p := make([]byte, 0, packetLen)
	p = append(p, bytes.Repeat([]byte{0xFF}, macLen)...)
	for i := 0; i < repeats; i++ {
		p = append(p, mac...)
	}
	return p, nil
}

// Sender broadcasts magic packets as single UDP datagrams from a freshly
// bound ephemeral socket. No retry is attempted on failure.
type Sender struct {
	target string
}

// NewSender creates a Sender aimed at the limited broadcast address.
func NewSender() *Sender {
	return &Sender{target: defaultTarget}
}

// WithTarget overrides the destination address (for testing).
func (s *Sender) WithTarget(addr string) *Sender {
	s.target = addr
	return s
}

// Send broadcasts one magic packet for mac.
func (s *Sender) Send(mac net.HardwareAddr) error {
	packet, err := MagicPacket(mac)
	if err != nil {
		return err
	}

	// The runtime enables SO_BROADCAST on datagram sockets, so dialing the
	// limited broadcast address from an ephemeral port is sufficient.
	conn, err := net.Dial("udp4", s.target)
	if err != nil {
		return fmt.Errorf("bind wol socket: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Write(packet); err != nil {
		return fmt.Errorf("send wol packet: %w", err)
	}
	return nil
}
