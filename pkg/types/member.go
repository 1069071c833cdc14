// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package types

// Image is a picture attached to a documentation entry.
type Image struct {
	// Filename is the asset file name, resolved by the caller.
	Filename string `json:"filename" yaml:"filename"`

	// Caption is the optional caption; empty when absent.
	Caption string `json:"caption,omitempty" yaml:"caption,omitempty"`
}

// MemberBase holds the fields shared by every documentation entity.
type MemberBase struct {
	// Name is unique within the containing scope.
	Name string `json:"name" yaml:"name"`

	// Order is a display ordering key. It is not contiguous and never used
	// for identity.
	Order int `json:"order" yaml:"order"`

	// Description is markdown text, possibly empty.
	Description string `json:"description" yaml:"description"`

	// Lists holds markdown bullet lists; nil when absent.
	Lists []string `json:"lists,omitempty" yaml:"lists,omitempty"`

	// Examples holds code examples; nil when absent.
	Examples []string `json:"examples,omitempty" yaml:"examples,omitempty"`

	// Images holds attached pictures in order; nil when absent.
	Images []Image `json:"images,omitempty" yaml:"images,omitempty"`
}
