// Package meshtasticpb holds the generated Meshtastic protobuf bindings for
// the subset of messages the host link routes on. Field numbers follow the
// upstream meshtastic/protobufs definitions; fields this subset leaves out
// are carried through as unknown fields.
package meshtasticpb

//go:generate protoc --proto_path=../../../proto --go_out=../../.. --go_opt=module=github.com/gg-glitch-88/meshlink meshtastic/portnums.proto meshtastic/channel.proto meshtastic/config.proto meshtastic/module_config.proto meshtastic/localonly.proto meshtastic/mesh.proto meshtastic/admin.proto
