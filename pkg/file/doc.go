// Package file validates selected files against named upload profiles.
//
// A Profile bundles a size limit and the accepted MIME types. Profiles are
// plain values: presets such as Avatar and ProductImage are rebuilt on every
// call, and Presets.Get hands out copies, so no caller can change a preset for
// everyone else.
//
// # Usage
//
//	res := file.Validate(file.Descriptor{
//	    Name:     "me.bmp",
//	    Size:     5 << 20,
//	    MIMEType: "image/bmp",
//	}, file.Avatar())
//	// res.Valid == false
//	// res.Errors[0] == "File size must not exceed 2.0 MiB"
//	// res.Errors[1] == "File type image/bmp is not allowed. Allowed types: ..."
//
// Unlike the price rule, file checks are not short-circuited: both the size and
// the type violation are reported, size first.
//
// For multipart uploads, Describe and ValidateHeader detect the MIME type from
// the first 512 bytes of content instead of the client-supplied header.
//
// # Configuration
//
// LoadPresets reads size limits from the environment:
//
//	UPLOAD_AVATAR_MAX_BYTES         (default 2097152)
//	UPLOAD_PRODUCT_IMAGE_MAX_BYTES  (default 2097152)
package file
