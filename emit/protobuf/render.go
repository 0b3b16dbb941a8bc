// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protobuf

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/types/descriptorpb"
)

// renderProtoText prints a FileDescriptorProto as .proto source. The
// official protobuf-go module ships no descriptor-to-text printer for
// human-authored .proto files (only wire/text-format for messages), so this
// walks the descriptor tree directly — grounded on the same "build the
// descriptor, then hand-render its concrete syntax" shape as asn1/uper's
// BitIO layering over the abstract encoding rules.
func renderProtoText(fd *descriptorpb.FileDescriptorProto) string {
	var b strings.Builder
	b.WriteString("// Code generated by asn1c; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "syntax = %q;\n\n", fd.GetSyntax())
	fmt.Fprintf(&b, "package %s;\n", fd.GetPackage())
	if fd.Options.GetGoPackage() != "" {
		fmt.Fprintf(&b, "\noption go_package = %q;\n", fd.Options.GetGoPackage())
	}

	for _, ed := range fd.EnumType {
		b.WriteString("\n")
		renderEnumText(&b, ed)
	}
	for _, msg := range fd.MessageType {
		b.WriteString("\n")
		renderMessageText(&b, msg)
	}
	return b.String()
}

func renderEnumText(b *strings.Builder, ed *descriptorpb.EnumDescriptorProto) {
	fmt.Fprintf(b, "enum %s {\n", ed.GetName())
	for _, v := range ed.Value {
		fmt.Fprintf(b, "  %s = %d;\n", v.GetName(), v.GetNumber())
	}
	b.WriteString("}\n")
}

func renderMessageText(b *strings.Builder, msg *descriptorpb.DescriptorProto) {
	fmt.Fprintf(b, "message %s {\n", msg.GetName())
	if len(msg.OneofDecl) > 0 {
		fmt.Fprintf(b, "  oneof %s {\n", msg.OneofDecl[0].GetName())
		for _, f := range msg.Field {
			fmt.Fprintf(b, "    %s %s = %d;\n", fieldTypeText(f), f.GetName(), f.GetNumber())
		}
		b.WriteString("  }\n")
		b.WriteString("}\n")
		return
	}
	for _, f := range msg.Field {
		label := ""
		if f.GetLabel() == descriptorpb.FieldDescriptorProto_LABEL_REPEATED {
			label = "repeated "
		}
		fmt.Fprintf(b, "  %s%s %s = %d;\n", label, fieldTypeText(f), f.GetName(), f.GetNumber())
	}
	b.WriteString("}\n")
}

func fieldTypeText(f *descriptorpb.FieldDescriptorProto) string {
	switch f.GetType() {
	case descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, descriptorpb.FieldDescriptorProto_TYPE_ENUM:
		return strings.TrimPrefix(f.GetTypeName(), ".")
	case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
		return "bool"
	case descriptorpb.FieldDescriptorProto_TYPE_INT32:
		return "int32"
	case descriptorpb.FieldDescriptorProto_TYPE_INT64:
		return "int64"
	case descriptorpb.FieldDescriptorProto_TYPE_UINT32:
		return "uint32"
	case descriptorpb.FieldDescriptorProto_TYPE_UINT64:
		return "uint64"
	case descriptorpb.FieldDescriptorProto_TYPE_BYTES:
		return "bytes"
	case descriptorpb.FieldDescriptorProto_TYPE_STRING:
		return "string"
	default:
		return "bytes"
	}
}
