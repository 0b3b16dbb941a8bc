// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package protobuf lowers a resolved [model.Program] to Protocol Buffers
// descriptors and renders the corresponding .proto text, one file per
// module. It exists as an additional resolved-model consumer, not a gRPC
// service generator: no service definitions are produced.
package protobuf

import (
	"fmt"

	"google.golang.org/protobuf/types/descriptorpb"

	"asn1c.dev/asn1c/model"
)

// Options controls how a module's descriptor is built.
type Options struct {
	// GoPackage sets the file's go_package option. Empty leaves it unset.
	GoPackage string
}

// Render builds a FileDescriptorProto for every module in prog and renders
// each to .proto source text, keyed by "<module>.proto".
func Render(prog *model.Program, opts Options) (map[string][]byte, error) {
	out := make(map[string][]byte, len(prog.Modules))
	for _, m := range prog.Modules {
		fd, err := buildFileDescriptor(m, opts)
		if err != nil {
			return nil, fmt.Errorf("protobuf: module %s: %w", m.Name, err)
		}
		out[protoFileName(m.Name)] = []byte(renderProtoText(fd))
	}
	return out, nil
}

func protoFileName(moduleName string) string {
	return sanitizeProtoName(moduleName) + ".proto"
}

// buildFileDescriptor projects one module into a FileDescriptorProto: one
// DescriptorProto per KindStruct/KindChoice type, one EnumDescriptorProto
// per KindEnum type, and the alias kinds (KindIntAlias, KindBytesAlias,
// KindStringAlias, KindListAlias) folded into the message fields that
// reference them, since proto3 has no standalone scalar-alias construct.
func buildFileDescriptor(m *model.Module, opts Options) (*descriptorpb.FileDescriptorProto, error) {
	pkg := sanitizeProtoName(m.Name)
	fd := &descriptorpb.FileDescriptorProto{
		Name:    strPtr(protoFileName(m.Name)),
		Package: strPtr(pkg),
		Syntax:  strPtr("proto3"),
	}
	if opts.GoPackage != "" {
		fd.Options = &descriptorpb.FileOptions{GoPackage: strPtr(opts.GoPackage)}
	}

	byName := make(map[string]*model.Type, len(m.Types))
	for _, t := range m.Types {
		byName[t.Name] = t
	}

	for _, t := range m.Types {
		switch t.Kind {
		case model.KindStruct, model.KindChoice:
			msg, err := buildMessage(t, byName)
			if err != nil {
				return nil, err
			}
			fd.MessageType = append(fd.MessageType, msg)
		case model.KindEnum:
			fd.EnumType = append(fd.EnumType, buildEnum(t))
		}
	}
	return fd, nil
}

func buildMessage(t *model.Type, byName map[string]*model.Type) (*descriptorpb.DescriptorProto, error) {
	name := exportProtoName(t.Name)
	msg := &descriptorpb.DescriptorProto{Name: strPtr(name)}

	if t.Kind == model.KindChoice {
		od := &descriptorpb.OneofDescriptorProto{Name: strPtr("value")}
		msg.OneofDecl = append(msg.OneofDecl, od)
		for i, f := range t.Fields {
			fld, err := buildField(f.Name, f.Type, int32(i+1), byName)
			if err != nil {
				return nil, err
			}
			fld.OneofIndex = int32Ptr(0)
			msg.Field = append(msg.Field, fld)
		}
		return msg, nil
	}

	for i, f := range t.Fields {
		fld, err := buildField(f.Name, f.Type, int32(i+1), byName)
		if err != nil {
			return nil, err
		}
		msg.Field = append(msg.Field, fld)
	}
	return msg, nil
}

func buildEnum(t *model.Type) *descriptorpb.EnumDescriptorProto {
	name := exportProtoName(t.Name)
	ed := &descriptorpb.EnumDescriptorProto{Name: strPtr(name)}
	seenZero := false
	for _, v := range t.Variants {
		// proto3 enums require the first declared value to be zero; shift
		// an ASN.1 ENUMERATED with no zero variant by reserving index 0 for
		// an explicit "unspecified" sentinel rather than renumbering.
		if v.Value == 0 {
			seenZero = true
		}
		ed.Value = append(ed.Value, &descriptorpb.EnumValueDescriptorProto{
			Name:   strPtr(fmt.Sprintf("%s_%s", upperSnake(name), upperSnake(v.Name))),
			Number: int32Ptr(int32(v.Value)),
		})
	}
	if !seenZero {
		ed.Value = append([]*descriptorpb.EnumValueDescriptorProto{{
			Name:   strPtr(upperSnake(name) + "_UNSPECIFIED"),
			Number: int32Ptr(0),
		}}, ed.Value...)
	}
	return ed
}

func buildField(name string, ft model.FieldType, number int32, byName map[string]*model.Type) (*descriptorpb.FieldDescriptorProto, error) {
	fld := &descriptorpb.FieldDescriptorProto{
		Name:   strPtr(snakeName(name)),
		Number: int32Ptr(number),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
	}

	if ft.Primitive == model.PrimitiveList {
		fld.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
		return fillScalarOrRef(fld, *ft.Element, byName)
	}
	return fillScalarOrRef(fld, ft, byName)
}

func fillScalarOrRef(fld *descriptorpb.FieldDescriptorProto, ft model.FieldType, byName map[string]*model.Type) (*descriptorpb.FieldDescriptorProto, error) {
	if ft.Ref != "" {
		target, ok := byName[ft.Ref]
		if !ok {
			return nil, fmt.Errorf("unresolved reference %q", ft.Ref)
		}
		switch target.Kind {
		case model.KindEnum:
			fld.Type = descriptorpb.FieldDescriptorProto_TYPE_ENUM.Enum()
			fld.TypeName = strPtr("." + exportProtoName(ft.Ref))
		case model.KindIntAlias:
			fld.Type = bucketProtoType(target.Bucket).Enum()
		case model.KindBytesAlias:
			fld.Type = descriptorpb.FieldDescriptorProto_TYPE_BYTES.Enum()
		case model.KindStringAlias:
			fld.Type = descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()
		case model.KindListAlias:
			fld.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
			return fillScalarOrRef(fld, *target.Element, byName)
		default:
			fld.Type = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum()
			fld.TypeName = strPtr("." + exportProtoName(ft.Ref))
		}
		return fld, nil
	}

	switch ft.Primitive {
	case model.PrimitiveBool:
		fld.Type = descriptorpb.FieldDescriptorProto_TYPE_BOOL.Enum()
	case model.PrimitiveNull:
		fld.Type = descriptorpb.FieldDescriptorProto_TYPE_BOOL.Enum()
	case model.PrimitiveInt:
		fld.Type = bucketProtoType(ft.IntBucket).Enum()
	case model.PrimitiveOctetString, model.PrimitiveBitString:
		fld.Type = descriptorpb.FieldDescriptorProto_TYPE_BYTES.Enum()
	case model.PrimitiveUTF8String, model.PrimitiveIA5String, model.PrimitiveNumericString,
		model.PrimitivePrintableString, model.PrimitiveVisibleString:
		fld.Type = descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()
	default:
		return nil, fmt.Errorf("unsupported field primitive %v", ft.Primitive)
	}
	return fld, nil
}

func bucketProtoType(b model.IntBucket) descriptorpb.FieldDescriptorProto_Type {
	switch b {
	case model.BucketU8, model.BucketU16, model.BucketU32:
		return descriptorpb.FieldDescriptorProto_TYPE_UINT32
	case model.BucketU64:
		return descriptorpb.FieldDescriptorProto_TYPE_UINT64
	case model.BucketI8, model.BucketI16, model.BucketI32:
		return descriptorpb.FieldDescriptorProto_TYPE_INT32
	default:
		return descriptorpb.FieldDescriptorProto_TYPE_INT64
	}
}

func strPtr(s string) *string  { return &s }
func int32Ptr(i int32) *int32 { return &i }
