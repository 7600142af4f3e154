// Package meshproto carries the schema identity of the channel-set
// payload: the meshtastic.ChannelSet message and its dependencies,
// built at init from descriptor protos. Field numbers and enum values
// match the upstream definitions, so payloads are wire-compatible with
// devices without shipping or compiling .proto files.
package meshproto

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

var file protoreflect.FileDescriptor

func init() {
	fd, err := protodesc.NewFile(fileProto(), nil)
	if err != nil {
		panic(fmt.Sprintf("meshproto: building channel-set schema: %v", err))
	}
	file = fd
}

// File is the schema file holding all channel-set message types.
func File() protoreflect.FileDescriptor {
	return file
}

// ChannelSet is the message type a share URL carries.
func ChannelSet() protoreflect.MessageDescriptor {
	return file.Messages().ByName("ChannelSet")
}

// ChannelSettings describes one channel of a set.
func ChannelSettings() protoreflect.MessageDescriptor {
	return file.Messages().ByName("ChannelSettings")
}

// LoRaConfig describes the radio configuration of a set.
func LoRaConfig() protoreflect.MessageDescriptor {
	return file.Messages().ByName("LoRaConfig")
}

func fileProto() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String("meshkit/chanset/channel_set.proto"),
		Package: proto.String("meshtastic"),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("ChannelSet"),
				Field: []*descriptorpb.FieldDescriptorProto{
					repeated(message("settings", 1, ".meshtastic.ChannelSettings")),
					message("lora_config", 2, ".meshtastic.LoRaConfig"),
				},
			},
			{
				Name: proto.String("ChannelSettings"),
				Field: []*descriptorpb.FieldDescriptorProto{
					scalar("channel_num", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
					scalar("psk", 2, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
					scalar("name", 3, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					scalar("id", 4, descriptorpb.FieldDescriptorProto_TYPE_FIXED32),
					scalar("uplink_enabled", 5, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
					scalar("downlink_enabled", 6, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
					message("module_settings", 7, ".meshtastic.ModuleSettings"),
				},
			},
			{
				Name: proto.String("ModuleSettings"),
				Field: []*descriptorpb.FieldDescriptorProto{
					scalar("position_precision", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
					scalar("is_client_muted", 2, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
				},
			},
			{
				Name: proto.String("LoRaConfig"),
				Field: []*descriptorpb.FieldDescriptorProto{
					scalar("use_preset", 1, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
					enum("modem_preset", 2, ".meshtastic.ModemPreset"),
					scalar("bandwidth", 3, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
					scalar("spread_factor", 4, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
					scalar("coding_rate", 5, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
					scalar("frequency_offset", 6, descriptorpb.FieldDescriptorProto_TYPE_FLOAT),
					enum("region", 7, ".meshtastic.RegionCode"),
					scalar("hop_limit", 8, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
					scalar("tx_enabled", 9, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
					scalar("tx_power", 10, descriptorpb.FieldDescriptorProto_TYPE_INT32),
					scalar("channel_num", 11, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
					scalar("override_duty_cycle", 12, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
					scalar("sx126x_rx_boosted_gain", 13, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
					scalar("override_frequency", 14, descriptorpb.FieldDescriptorProto_TYPE_FLOAT),
					scalar("pa_fan_disabled", 15, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
					repeated(scalar("ignore_incoming", 103, descriptorpb.FieldDescriptorProto_TYPE_UINT32)),
					scalar("ignore_mqtt", 104, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
					scalar("config_ok_to_mqtt", 105, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
				},
			},
		},
		EnumType: []*descriptorpb.EnumDescriptorProto{
			{
				Name: proto.String("ModemPreset"),
				Value: enumValues(
					"LONG_FAST", "LONG_SLOW", "VERY_LONG_SLOW", "MEDIUM_SLOW",
					"MEDIUM_FAST", "SHORT_SLOW", "SHORT_FAST", "LONG_MODERATE",
					"SHORT_TURBO", "LONG_TURBO",
				),
			},
			{
				Name: proto.String("RegionCode"),
				Value: enumValues(
					"UNSET", "US", "EU_433", "EU_868", "CN", "JP", "ANZ", "KR",
					"TW", "RU", "IN", "NZ_865", "TH", "LORA_24", "UA_433",
					"UA_868", "MY_433", "MY_919", "SG_923", "PH_433", "PH_868",
					"PH_915", "ANZ_433", "KZ_433", "KZ_863", "NP_865", "BR_902",
				),
			},
		},
	}
}

func scalar(name string, num int32, t descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(num),
		Type:   t.Enum(),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
	}
}

func message(name string, num int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := scalar(name, num, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE)
	f.TypeName = proto.String(typeName)
	return f
}

func enum(name string, num int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := scalar(name, num, descriptorpb.FieldDescriptorProto_TYPE_ENUM)
	f.TypeName = proto.String(typeName)
	return f
}

func repeated(f *descriptorpb.FieldDescriptorProto) *descriptorpb.FieldDescriptorProto {
	f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	return f
}

func enumValues(vs ...string) []*descriptorpb.EnumValueDescriptorProto {
	res := make([]*descriptorpb.EnumValueDescriptorProto, len(vs))
	for i, v := range vs {
		res[i] = &descriptorpb.EnumValueDescriptorProto{
			Name:   proto.String(v),
			Number: proto.Int32(int32(i)),
		}
	}
	return res
}
