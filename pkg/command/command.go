package command

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/bwmarrin/discordgo"
)

type (
	Page struct {
		Limit  int
		Offset int
	}

	Command interface {
		ApplicationCommand() *discordgo.ApplicationCommand
		Handle(context.Context, *Guild, *discordgo.Session, *discordgo.InteractionCreate) error
		Autocomplete(context.Context, *Guild, *discordgo.Session, *discordgo.InteractionCreate) error
		Button(context.Context, *Guild, *discordgo.Session, *discordgo.InteractionCreate, io.Reader) error
		Name() string
	}

	action interface {
		Name() byte
	}

	handler[S any, T any] func(context.Context, *Guild, *discordgo.InteractionCreate, S) (T, error)
	followUp[T any]       struct {
		Options T
	}
	paginator[T any] struct {
		Options T
		Page    Page
	}

	command[T any] struct {
		applicationCommand *discordgo.ApplicationCommand
		handle             handler[*T, *discordgo.InteractionResponseData]
		autocomplete       handler[*T, []*discordgo.ApplicationCommandOptionChoice]
		paginate           handler[paginator[T], *discordgo.InteractionResponseData]
		limit              *int
	}
)

func (paginator[T]) Name() byte {
	return 'p'
}

func (followUp[T]) Name() byte {
	return 'f'
}

// Discord caps custom IDs at 100 characters.
const maxCustomID = 100

var ErrCustomIDTooLong = errors.New("custom id too long")

func customID(a action, cmdName string) (string, error) {
	cmdData, err := marshal(&cmdName)
	if err != nil {
		return "", fmt.Errorf("failed to marshal follow-up command: %w", err)
	}

	actionData, err := marshal(a)
	if err != nil {
		return "", fmt.Errorf("failed to marshal button data: %w", err)
	}

	var nonce [4]byte
	_, err = rand.Read(nonce[:])
	if err != nil {
		return "", fmt.Errorf("failed to generate button nonce: %w", err)
	}

	raw := cmdData + string(a.Name()) + actionData + string(nonce[:])
	id := base64.RawURLEncoding.EncodeToString([]byte(raw))
	if len(id) > maxCustomID {
		return "", fmt.Errorf("custom id for %q is %d characters: %w", cmdName, len(id), ErrCustomIDTooLong)
	}

	return id, nil
}

// ButtonCommand decodes a button's custom ID, returning the name of the
// command that created it and a reader positioned at the button state.
func ButtonCommand(id string) (string, io.Reader, error) {
	raw, err := base64.RawURLEncoding.DecodeString(id)
	if err != nil {
		return "", nil, fmt.Errorf("malformed custom id: %w", err)
	}

	reader := bytes.NewReader(raw)
	name, err := unmarshal[*string](reader)
	if err != nil {
		return "", nil, fmt.Errorf("failed to unmarshal follow-up command: %w", err)
	}
	if *name == nil {
		return "", nil, fmt.Errorf("custom id names no command: %w", ErrDecodeOption)
	}

	return **name, reader, nil
}

func buttonState[T action](reader io.Reader) (*T, error) {
	state, err := unmarshal[T](reader)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal button state: %w", err)
	}

	return state, nil
}

func (cmd command[T]) ApplicationCommand() *discordgo.ApplicationCommand {
	return cmd.applicationCommand
}

func (cmd command[T]) Name() string {
	return cmd.applicationCommand.Name
}

var ErrUnrecognizedInteraction = errors.New("could not handle interaction")

func (cmd command[T]) responseBody(
	ctx context.Context,
	guild *Guild,
	interaction *discordgo.InteractionCreate,
	opt T,
) (*discordgo.InteractionResponseData, error) {
	var body *discordgo.InteractionResponseData
	var err error
	if cmd.handle != nil {
		body, err = cmd.handle(ctx, guild, interaction, &opt)
		if err != nil {
			return nil, fmt.Errorf("error while calling handler: %w", err)
		}
	} else if cmd.paginate != nil && cmd.limit != nil {
		paginator := paginator[T]{
			Options: opt,
			Page: Page{
				Limit:  *cmd.limit,
				Offset: 0,
			},
		}
		body, err = cmd.paginate(ctx, guild, interaction, paginator)
		if err != nil {
			return nil, fmt.Errorf("error while calling handler: %w", err)
		}
	} else {
		return nil, fmt.Errorf("no handler for command: %w", ErrUnrecognizedInteraction)
	}

	return body, nil
}

func (cmd command[T]) response(
	ctx context.Context,
	guild *Guild,
	interaction *discordgo.InteractionCreate,
) (*discordgo.InteractionResponseData, error) {
	data := interaction.ApplicationCommandData()

	var structure T
	err := decodeOptions(data.Options, &structure)
	if err != nil {
		return nil, fmt.Errorf("error while decoding options for command %q: %w", data.Name, err)
	}

	body, err := cmd.responseBody(ctx, guild, interaction, structure)
	if err != nil {
		return nil, fmt.Errorf("could not handle command %q: %w", cmd.Name(), err)
	}

	return body, nil
}

func (cmd command[T]) Handle(
	ctx context.Context,
	guild *Guild,
	sess *discordgo.Session,
	interaction *discordgo.InteractionCreate,
) error {
	body, err := cmd.response(ctx, guild, interaction)
	if err != nil {
		return err
	}

	err = sess.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: body,
	})
	if err != nil {
		return fmt.Errorf("error while responding to command %q: %w", cmd.Name(), err)
	}

	return nil
}

// buttonResponse turns a button press into the response that replaces the
// paginated message or posts the follow-up.
func (cmd command[T]) buttonResponse(
	ctx context.Context,
	guild *Guild,
	interaction *discordgo.InteractionCreate,
	reader io.Reader,
) (*discordgo.InteractionResponse, error) {
	var action [1]byte
	_, err := io.ReadFull(reader, action[:])
	if err != nil {
		return nil, fmt.Errorf("could not read action from button state: %w", err)
	}

	switch action[0] {
	case paginator[T]{}.Name():
		if cmd.paginate == nil {
			return nil, fmt.Errorf("command %q does not paginate: %w", cmd.Name(), ErrUnrecognizedInteraction)
		}

		page, err := buttonState[paginator[T]](reader)
		if err != nil {
			return nil, fmt.Errorf("error while deserializing pagination data: %w", err)
		}

		body, err := cmd.paginate(ctx, guild, interaction, *page)
		if err != nil {
			return nil, fmt.Errorf("error while calling pagination handler: %w", err)
		}

		return &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: body,
		}, nil

	case followUp[T]{}.Name():
		s, err := buttonState[followUp[T]](reader)
		if err != nil {
			return nil, fmt.Errorf("error while deserializing follow-up data: %w", err)
		}

		body, err := cmd.responseBody(ctx, guild, interaction, s.Options)
		if err != nil {
			return nil, fmt.Errorf("could not handle command %q: %w", cmd.Name(), err)
		}

		return &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: body,
		}, nil

	default:
		return nil, fmt.Errorf("unknown button action %q: %w", action, ErrUnrecognizedInteraction)
	}
}

func (cmd command[T]) Button(
	ctx context.Context,
	guild *Guild,
	sess *discordgo.Session,
	interaction *discordgo.InteractionCreate,
	reader io.Reader,
) error {
	resp, err := cmd.buttonResponse(ctx, guild, interaction, reader)
	if err != nil {
		return err
	}

	err = sess.InteractionRespond(interaction.Interaction, resp)
	if err != nil {
		return fmt.Errorf("failed to complete interaction: %w", err)
	}

	return nil
}

func (cmd command[T]) choices(
	ctx context.Context,
	guild *Guild,
	interaction *discordgo.InteractionCreate,
) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	if cmd.autocomplete == nil {
		return nil, fmt.Errorf("command %q has no autocompletion: %w", cmd.Name(), ErrUnrecognizedInteraction)
	}

	var structure T
	err := decodeOptions(interaction.ApplicationCommandData().Options, &structure)
	if err != nil {
		return nil, fmt.Errorf("error while decoding options for autocomplete: %w", err)
	}

	choices, err := cmd.autocomplete(ctx, guild, interaction, &structure)
	if err != nil {
		return nil, fmt.Errorf("error while calling autocompletion handler: %w", err)
	}

	return choices, nil
}

func (cmd command[T]) Autocomplete(
	ctx context.Context,
	guild *Guild,
	sess *discordgo.Session,
	interaction *discordgo.InteractionCreate,
) error {
	choices, err := cmd.choices(ctx, guild, interaction)
	if err != nil {
		return err
	}

	err = sess.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	})
	if err != nil {
		return fmt.Errorf("error while sending autocompletions: %w", err)
	}

	return nil
}

var ErrDecodeOption = errors.New("error while decoding options")

type discordValue interface {
	string | int | bool
}

type discordField[T discordValue] struct {
	Value   T
	Focused bool
}

var fieldTypes = map[reflect.Type]bool{
	reflect.TypeOf(discordField[string]{}): true,
	reflect.TypeOf(discordField[int]{}):    true,
	reflect.TypeOf(discordField[bool]{}):   true,
}

// decodeOptions fills the fields of structure tagged `option:"name"` from the
// interaction options. Subcommands decode into nested structs, optional
// options into pointers, and discordField records autocomplete focus.
func decodeOptions(options []*discordgo.ApplicationCommandInteractionDataOption, structure any) (ret error) {
	defer func() {
		r := recover()
		if err, ok := r.(*reflect.ValueError); ok {
			ret = fmt.Errorf("reflection error while decoding options: %v: %w", err.Error(), ErrDecodeOption)
		} else if r != nil {
			panic(r)
		}
	}()

	value := reflect.Indirect(reflect.ValueOf(structure))
	if !value.CanAddr() || value.Kind() != reflect.Struct {
		return fmt.Errorf("value is not an addressable struct: %w", ErrDecodeOption)
	}

	m := make(map[string]reflect.Value, value.NumField())
	for i := 0; i < value.NumField(); i++ {
		field := value.Field(i)
		tfield := value.Type().Field(i)
		option := tfield.Tag.Get("option")
		if option == "" {
			continue
		}

		if !field.CanSet() {
			return fmt.Errorf("field %q cannot be set: %w", tfield.Name, ErrDecodeOption)
		}
		m[option] = field
	}

	for _, option := range options {
		field, ok := m[option.Name]
		if !ok {
			return fmt.Errorf("unexpected option name %q: %w", option.Name, ErrDecodeOption)
		}

		if field.Kind() == reflect.Pointer {
			ptr := reflect.New(field.Type().Elem())
			field.Set(ptr)

			field = ptr.Elem()
		}
		if field.Kind() == reflect.Struct && fieldTypes[field.Type()] {
			backing := field.FieldByName("Value")
			backing.Set(reflect.Zero(backing.Type()))
			focused := field.FieldByName("Focused")
			focused.SetBool(option.Focused)

			field = backing
		}

		switch option.Type {
		case discordgo.ApplicationCommandOptionString:
			if field.Kind() == reflect.String {
				field.SetString(option.StringValue())
				continue
			}
		case discordgo.ApplicationCommandOptionInteger:
			if field.Kind() == reflect.Int {
				field.SetInt(option.IntValue())
				continue
			}
		case discordgo.ApplicationCommandOptionBoolean:
			if field.Kind() == reflect.Bool {
				field.SetBool(option.BoolValue())
				continue
			}
		case discordgo.ApplicationCommandOptionSubCommand:
			if field.Kind() == reflect.Struct {
				err := decodeOptions(option.Options, field.Addr().Interface())
				if err != nil {
					return fmt.Errorf("error while decoding options for subcommand %q: %w", option.Name, err)
				}

				continue
			}
		default:
			return fmt.Errorf("unsupported type %q for option %q: %w", option.Type, option.Name, ErrDecodeOption)
		}
		return fmt.Errorf("unexpected type %q for option %q: %w", option.Type, option.Name, ErrDecodeOption)
	}

	return nil
}
