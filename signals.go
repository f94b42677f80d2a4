package crate

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codec and pipeline events.
var (
	SignalEncodeStart     = capitan.NewSignal("crate.encode.start", "Encode operation beginning")
	SignalEncodeComplete  = capitan.NewSignal("crate.encode.complete", "Encode operation finished")
	SignalDecodeStart     = capitan.NewSignal("crate.decode.start", "Decode operation beginning")
	SignalDecodeComplete  = capitan.NewSignal("crate.decode.complete", "Decode operation finished")
	SignalPipelineCreated = capitan.NewSignal("crate.pipeline.created", "Pipeline instantiated")
	SignalSealStart       = capitan.NewSignal("crate.seal.start", "Seal operation beginning")
	SignalSealComplete    = capitan.NewSignal("crate.seal.complete", "Seal operation finished")
	SignalOpenStart       = capitan.NewSignal("crate.open.start", "Open operation beginning")
	SignalOpenComplete    = capitan.NewSignal("crate.open.complete", "Open operation finished")
)

// Keys for typed event data.
var (
	KeyName        = capitan.NewStringKey("name")
	KeyType        = capitan.NewStringKey("type")
	KeySubtype     = capitan.NewStringKey("subtype")
	KeyContentType = capitan.NewStringKey("content_type")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitEncodeStart emits an event when an encode begins.
func emitEncodeStart(ctx context.Context, name string) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyName.Field(name),
	)
}

// emitEncodeComplete emits an event when an encode finishes.
func emitEncodeComplete(ctx context.Context, name string, t Type, st Subtype, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyName.Field(name),
		KeyType.Field(string(t)),
		KeySubtype.Field(string(st)),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitDecodeStart emits an event when a decode begins.
func emitDecodeStart(ctx context.Context, name string, t Type, st Subtype) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyName.Field(name),
		KeyType.Field(string(t)),
		KeySubtype.Field(string(st)),
	)
}

// emitDecodeComplete emits an event when a decode finishes.
func emitDecodeComplete(ctx context.Context, name string, t Type, st Subtype, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyName.Field(name),
		KeyType.Field(string(t)),
		KeySubtype.Field(string(st)),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}

// emitPipelineCreated emits an event when a pipeline is created.
func emitPipelineCreated(ctx context.Context, contentType string) {
	capitan.Emit(ctx, SignalPipelineCreated,
		KeyContentType.Field(contentType),
	)
}

// emitSealStart emits an event when a seal begins.
func emitSealStart(ctx context.Context, contentType, name string) {
	capitan.Emit(ctx, SignalSealStart,
		KeyContentType.Field(contentType),
		KeyName.Field(name),
	)
}

// emitSealComplete emits an event when a seal finishes.
func emitSealComplete(ctx context.Context, contentType, name string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyName.Field(name),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSealComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSealComplete, fields...)
	}
}

// emitOpenStart emits an event when an open begins.
func emitOpenStart(ctx context.Context, contentType string) {
	capitan.Emit(ctx, SignalOpenStart,
		KeyContentType.Field(contentType),
	)
}

// emitOpenComplete emits an event when an open finishes.
func emitOpenComplete(ctx context.Context, contentType, name string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyName.Field(name),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalOpenComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalOpenComplete, fields...)
	}
}
