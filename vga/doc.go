// Package vga implements the VGA text mode cell encoding.
//
// A cell is 16 bits: the character byte in the low byte and the color
// attribute in the high byte. An attribute holds a 4-bit foreground and a
// 4-bit background color. The [Color] type is compatible with Go's native
// [color.Color] interface.
package vga
