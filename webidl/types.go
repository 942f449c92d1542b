package webidl

// https://heycam.github.io/webidl/#idl-DOMString
type DOMString string

// https://heycam.github.io/webidl/#idl-unsigned-long
type UnsignedLong = uint32
