// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

//go:generate go run ../../internal/generator

// Package ipv4 decomposes IPv4 headers (RFC 791) into bitfields.  A header is
// split into six big-endian 32-bit words:
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|Version|  IHL  |Type of Service|          Total Length         |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|         Identification        |Flags|      Fragment Offset    |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|  Time to Live |    Protocol   |         Header Checksum       |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                       Source Address                          |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                    Destination Address                        |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                    Options                    |    Padding    |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//
// The first three and the sixth words are bitfield types generated from
// ipv4.bitrange, whilst the addresses are held as plain bytes.
package ipv4

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"

	"github.com/consensys/go-bitrange/pkg/util/collection/bit"
)

// HeaderSize is the number of bytes in a header, including one word of options.
const HeaderSize = 24

// ErrShortHeader indicates fewer than HeaderSize bytes were available.
var ErrShortHeader = errors.New("short ipv4 header")

// Header is an IPv4 header split into its constituent words.
type Header struct {
	First       Ipv4First
	Second      Ipv4Second
	Third       Ipv4Third
	Source      [4]byte
	Destination [4]byte
	Sixth       Ipv4Sixth
}

// Parse decomposes the first HeaderSize bytes of a given array into a header.
// Any trailing bytes are ignored.
func Parse(bytes []byte) (Header, error) {
	var (
		header Header
		words  [6]uint32
		reader = bit.NewReader(bytes)
		err    error
	)
	//
	if len(bytes) < HeaderSize {
		return header, fmt.Errorf("%w (%d bytes, expected %d)", ErrShortHeader, len(bytes), HeaderSize)
	}
	//
	for i := range words {
		// Cannot fail, since sufficient bytes are known to remain.
		word, _ := reader.Read(32)
		words[i] = uint32(word)
	}
	//
	if header.First, err = Ipv4FirstFrom(words[0]); err != nil {
		return header, err
	} else if header.Second, err = Ipv4SecondFrom(words[1]); err != nil {
		return header, err
	} else if header.Third, err = Ipv4ThirdFrom(words[2]); err != nil {
		return header, err
	} else if header.Sixth, err = Ipv4SixthFrom(words[5]); err != nil {
		return header, err
	}
	//
	copy(header.Source[:], bytes[12:16])
	copy(header.Destination[:], bytes[16:20])
	//
	return header, nil
}

// Bytes encodes this header back into its HeaderSize bytes.
func (h Header) Bytes() []byte {
	writer := bit.NewWriter()
	writer.Write(32, uint64(h.First.Bits()))
	writer.Write(32, uint64(h.Second.Bits()))
	writer.Write(32, uint64(h.Third.Bits()))
	//
	for _, b := range h.Source {
		writer.Write(8, uint64(b))
	}
	//
	for _, b := range h.Destination {
		writer.Write(8, uint64(b))
	}
	//
	writer.Write(32, uint64(h.Sixth.Bits()))
	//
	return writer.Bytes()
}

// Version returns the IP version number.
func (h Header) Version() uint8 {
	return uint8(h.First.Version())
}

// IHL returns the Internet Header Length (in 32-bit words).
func (h Header) IHL() uint8 {
	return uint8(h.First.Ihl())
}

// TypeOfService returns the type of service byte.
func (h Header) TypeOfService() uint8 {
	return uint8(h.First.TypeOfService())
}

// TotalLength returns the length of the datagram in bytes.
func (h Header) TotalLength() uint16 {
	return uint16(h.First.TotalLength())
}

// Identification returns the identifier used when reassembling fragments.
func (h Header) Identification() uint16 {
	return uint16(h.Second.Identification())
}

// Flags returns the three control flags.
func (h Header) Flags() uint8 {
	return uint8(h.Second.Flags())
}

// FragmentOffset returns the position of this fragment in the datagram.
func (h Header) FragmentOffset() uint16 {
	return uint16(h.Second.FragmentOffset())
}

// TimeToLive returns the remaining time to live.
func (h Header) TimeToLive() uint8 {
	return uint8(h.Third.TimeToLive())
}

// Protocol returns the protocol used in the data portion of the datagram.
func (h Header) Protocol() uint8 {
	return uint8(h.Third.Protocol())
}

// HeaderChecksum returns the checksum of this header.
func (h Header) HeaderChecksum() uint16 {
	return uint16(h.Third.HeaderChecksum())
}

// SourceAddress returns the source address.
func (h Header) SourceAddress() netip.Addr {
	return netip.AddrFrom4(h.Source)
}

// DestinationAddress returns the destination address.
func (h Header) DestinationAddress() netip.Addr {
	return netip.AddrFrom4(h.Destination)
}

// Options returns the 24 bits of options.
func (h Header) Options() uint32 {
	return h.Sixth.Options()
}

// Padding returns the padding byte.
func (h Header) Padding() uint8 {
	return uint8(h.Sixth.Padding())
}

const separator = "+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+"

// String renders this header as a diagram in the style of RFC 791, with each
// value centred in its field.
func (h Header) String() string {
	var builder strings.Builder
	//
	row := func(cells ...any) {
		builder.WriteString(separator)
		builder.WriteString("\n|")
		// Cells are pairs of bit widths and values
		for i := 0; i < len(cells); i += 2 {
			builder.WriteString(centre(fmt.Sprint(cells[i+1]), 2*cells[i].(int)-1))
			builder.WriteString("|")
		}
		//
		builder.WriteString("\n")
	}
	//
	row(4, h.Version(), 4, h.IHL(), 8, h.TypeOfService(), 16, h.TotalLength())
	row(16, h.Identification(), 3, h.Flags(), 13, h.FragmentOffset())
	row(8, h.TimeToLive(), 8, h.Protocol(), 16, h.HeaderChecksum())
	row(32, h.SourceAddress())
	row(32, h.DestinationAddress())
	row(24, h.Options(), 8, h.Padding())
	builder.WriteString(separator)
	//
	return builder.String()
}

// Centre text within a given width, favouring the left when the padding is
// uneven.
func centre(text string, width int) string {
	padding := max(0, width-len(text))
	left := padding / 2
	//
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", padding-left)
}
