package property

import (
	"reflect"
	"strings"

	"github.com/go-faster/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

var protoMessageType = reflect.TypeFor[proto.Message]()

// IsProtoMessage reports whether *t is a generated protobuf message.
func IsProtoMessage(t reflect.Type) bool {
	t = Normalize(t)
	return t != nil && t.Kind() == reflect.Struct && reflect.PointerTo(t).Implements(protoMessageType)
}

// discoverProto takes message fields in descriptor order. A oneof becomes a
// single object property at the position of its first member.
func discoverProto(t reflect.Type) (*ClassProperties, error) {
	msg := reflect.New(t).Interface().(proto.Message)
	desc := msg.ProtoReflect().Descriptor()

	byName := protoFieldIndex(t)
	seenOneofs := make(map[protoreflect.Name]struct{})

	var props []Property
	fields := desc.Fields()
	for i := 0; i < fields.Len(); i++ {
		fd := fields.Get(i)
		name := string(fd.Name())
		if od := fd.ContainingOneof(); od != nil && !od.IsSynthetic() {
			if _, ok := seenOneofs[od.Name()]; ok {
				continue
			}
			seenOneofs[od.Name()] = struct{}{}
			name = string(od.Name())
		}
		index, ok := byName[name]
		if !ok {
			return nil, &DiscoveryError{
				Type: t,
				Err:  errors.Wrapf(ErrBadTag, "no Go field for protobuf field %q", name),
			}
		}
		props = append(props, NewFieldProperty(t, index, name, PolicyAll))
	}
	if len(props) == 0 {
		return nil, &DiscoveryError{
			Type: t,
			Err:  errors.Wrapf(ErrNoProperties, "message %s has no fields", desc.FullName()),
		}
	}
	return newClassProperties(t, props, t), nil
}

// protoFieldIndex maps protobuf field and oneof names to Go struct field
// indexes using the generated `protobuf` / `protobuf_oneof` tags.
func protoFieldIndex(t reflect.Type) map[string]int {
	res := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if oneof, ok := f.Tag.Lookup("protobuf_oneof"); ok {
			res[oneof] = i
			continue
		}
		tag, ok := f.Tag.Lookup("protobuf")
		if !ok {
			continue
		}
		for _, part := range strings.Split(tag, ",") {
			if name, ok := strings.CutPrefix(part, "name="); ok {
				res[name] = i
				break
			}
		}
	}
	return res
}
