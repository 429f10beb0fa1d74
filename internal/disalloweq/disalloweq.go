// Copyright 2023 Yawning Angel.  All Rights Reserved.
//
// glv-voi can be used in non-commercial projects of any kind,
// excluding those relating to or containing non-fungible tokens
// ("NFT") or blockchain-related projects.
//
// The package can not be modified to suit your needs. You may not
// redistribute or resell it, even if modified.

// Package disalloweq provides a marker type that makes the compiler
// reject `==` on any struct that embeds it.
package disalloweq

// DisallowEqual is a zero-size, non-comparable field.  Field elements
// and points embed it, since two equal values may have different
// internal representations (eg: projective coordinates), and comparing
// them with `==` is always a bug.
type DisallowEqual [0]func()
