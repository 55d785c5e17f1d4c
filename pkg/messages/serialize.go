package messages

import (
	"bytes"
	"fmt"
	"io"

	framefb "github.com/Quelsed/azngameahun/flatbuffers/frame"
	messagefb "github.com/Quelsed/azngameahun/flatbuffers/message"
	"github.com/Quelsed/azngameahun/pkg/render"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/klauspost/compress/zstd"
)

func SerializeMessage(m *Message) ([]byte, error) {
	b, err := SerializeMessageFlatbuffer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize message: %v", err)
	}

	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress message: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

func DeserializeMessage(data []byte) (*Message, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()
	b, err := io.ReadAll(io.LimitReader(compReader, MessageBufferSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed message: %v", err)
	}
	if len(b) > MessageBufferSize {
		return nil, fmt.Errorf("decompressed message exceeds %d bytes", MessageBufferSize)
	}

	message, err := DeserializeMessageFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %v", err)
	}

	return message, nil
}

func SerializeMessageFlatbuffer(m *Message) ([]byte, error) {
	builder := flatbuffers.NewBuilder(0)

	payload := builder.CreateByteVector(m.Payload)

	messagefb.MessageStart(builder)
	messagefb.MessageAddClientId(builder, m.ClientID)
	messagefb.MessageAddType(builder, byte(m.Type))
	messagefb.MessageAddPayload(builder, payload)
	messageOffset := messagefb.MessageEnd(builder)
	builder.Finish(messageOffset)
	b := builder.FinishedBytes()

	return b, nil
}

func DeserializeMessageFlatbuffer(b []byte) (m *Message, err error) {
	// a truncated buffer makes the generated accessors index out of range
	defer func() {
		if r := recover(); r != nil {
			m, err = nil, fmt.Errorf("malformed message: %v", r)
		}
	}()

	message := &Message{}
	messageFlatbuffer := messagefb.GetRootAsMessage(b, 0)
	message.ClientID = messageFlatbuffer.ClientId()
	message.Type = MessageType(messageFlatbuffer.Type())
	message.Payload = append([]byte(nil), messageFlatbuffer.PayloadBytes()...)

	return message, nil
}

// NewFrameMessage wraps a rendered frame into a server message.
func NewFrameMessage(clientID uint32, frame *render.Frame) *Message {
	return &Message{
		ClientID: clientID,
		Type:     MessageTypeServerFrame,
		Payload:  SerializeFrame(frame),
	}
}

func SerializeFrame(frame *render.Frame) []byte {
	builder := flatbuffers.NewBuilder(1024)
	builder.Finish(SerializeFrameFlatbuffer(builder, frame))
	return builder.FinishedBytes()
}

func DeserializeFrame(b []byte) (frame *render.Frame, err error) {
	defer func() {
		if r := recover(); r != nil {
			frame, err = nil, fmt.Errorf("malformed frame: %v", r)
		}
	}()
	return FrameFlatbufferToFrame(framefb.GetRootAsFrame(b, 0)), nil
}

func SerializeFrameFlatbuffer(builder *flatbuffers.Builder, frame *render.Frame) flatbuffers.UOffsetT {
	directives := make([]flatbuffers.UOffsetT, 0, len(frame.Directives))
	for _, d := range frame.Directives {
		directives = append(directives, SerializeDirectiveFlatbuffer(builder, d))
	}
	framefb.FrameStartDirectivesVector(builder, len(directives))
	for i := len(directives) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(directives[i])
	}
	directiveVector := builder.EndVector(len(directives))

	hud := SerializeHUDFlatbuffer(builder, frame.HUD)

	framefb.FrameStart(builder)
	framefb.FrameAddTick(builder, frame.Tick)
	framefb.FrameAddWidth(builder, frame.Width)
	framefb.FrameAddHeight(builder, frame.Height)
	framefb.FrameAddDirectives(builder, directiveVector)
	framefb.FrameAddHud(builder, hud)
	return framefb.FrameEnd(builder)
}

func SerializeDirectiveFlatbuffer(builder *flatbuffers.Builder, d render.Directive) flatbuffers.UOffsetT {
	key := builder.CreateString(string(d.Key))
	color := builder.CreateString(d.Color)

	framefb.DirectiveStart(builder)
	framefb.DirectiveAddKind(builder, byte(d.Kind))
	framefb.DirectiveAddKey(builder, key)
	framefb.DirectiveAddX(builder, d.X)
	framefb.DirectiveAddY(builder, d.Y)
	framefb.DirectiveAddW(builder, d.W)
	framefb.DirectiveAddH(builder, d.H)
	framefb.DirectiveAddAngle(builder, d.Angle)
	framefb.DirectiveAddAlpha(builder, d.Alpha)
	framefb.DirectiveAddColor(builder, color)
	return framefb.DirectiveEnd(builder)
}

func SerializeHUDFlatbuffer(builder *flatbuffers.Builder, hud render.HUD) flatbuffers.UOffsetT {
	phase := builder.CreateString(hud.Phase)
	timerColor := builder.CreateString(hud.TimerColor)
	finalText := builder.CreateString(hud.FinalText)

	framefb.HudStart(builder)
	framefb.HudAddPhase(builder, phase)
	framefb.HudAddScore(builder, int32(hud.Score))
	framefb.HudAddHighScore(builder, int32(hud.HighScore))
	framefb.HudAddTimeLeft(builder, hud.TimeLeft)
	framefb.HudAddTimerColor(builder, timerColor)
	framefb.HudAddFinalText(builder, finalText)
	return framefb.HudEnd(builder)
}

func FrameFlatbufferToFrame(fb *framefb.Frame) *render.Frame {
	frame := &render.Frame{
		Tick:       fb.Tick(),
		Width:      fb.Width(),
		Height:     fb.Height(),
		Directives: make([]render.Directive, 0, fb.DirectivesLength()),
	}

	directive := &framefb.Directive{}
	for i := 0; i < fb.DirectivesLength(); i++ {
		if !fb.Directives(directive, i) {
			continue
		}
		frame.Directives = append(frame.Directives, render.Directive{
			Kind:  render.Kind(directive.Kind()),
			Key:   render.AssetKey(directive.Key()),
			X:     directive.X(),
			Y:     directive.Y(),
			W:     directive.W(),
			H:     directive.H(),
			Angle: directive.Angle(),
			Alpha: directive.Alpha(),
			Color: string(directive.Color()),
		})
	}

	if hud := fb.Hud(nil); hud != nil {
		frame.HUD = render.HUD{
			Phase:      string(hud.Phase()),
			Score:      int(hud.Score()),
			HighScore:  int(hud.HighScore()),
			TimeLeft:   hud.TimeLeft(),
			TimerColor: string(hud.TimerColor()),
			FinalText:  string(hud.FinalText()),
		}
	}

	return frame
}
