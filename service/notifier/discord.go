package notifier

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/base/pricefmt"
	"github.com/solmart/goapi/domain"
	"github.com/solmart/goapi/domain/listing"
)

type DiscordBotConfig struct {
	DiscordBotKey    string
	DiscordChannelId string
	ExplorerUrl      string
}

type discordNotifier struct {
	config  DiscordBotConfig
	discord *discordgo.Session
}

func NewDiscordNotifier(config DiscordBotConfig) Notifier {
	discord, err := discordgo.New(fmt.Sprintf("Bot %s", config.DiscordBotKey))
	if err != nil {
		panic("failed to connect to discord")
	}

	return &discordNotifier{config, discord}
}

func (h *discordNotifier) NotifySold(c ctx.Ctx, row *listing.Listing, buyer string) error {
	msg := &discordgo.MessageEmbed{
		Title:       "Item sold!",
		Description: fmt.Sprintf("%s/address/%s", h.config.ExplorerUrl, row.Mint),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Mint", Value: row.Mint.String()},
			{Name: "Seller", Value: row.Owner.String()},
			{Name: "Buyer", Value: buyer},
			{Name: "Price", Value: fmt.Sprintf("%s SOL", pricefmt.FromLamports(domain.Lamports(row.Price)))},
		},
	}

	if _, err := h.discord.ChannelMessageSendEmbed(h.config.DiscordChannelId, msg); err != nil {
		c.WithField("err", err).Warn("ChannelMessageSendEmbed failed")
		return err
	}
	return nil
}

func (h *discordNotifier) NotifyRepaired(c ctx.Ctx, before, after *listing.Listing) error {
	msg := &discordgo.MessageEmbed{
		Title:       "Index row repaired",
		Description: fmt.Sprintf("%s/address/%s", h.config.ExplorerUrl, after.Mint),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Mint", Value: after.Mint.String()},
			{Name: "Owner", Value: fmt.Sprintf("%s -> %s", before.Owner, after.Owner)},
			{Name: "Listed", Value: fmt.Sprintf("%t -> %t", before.Listed, after.Listed)},
		},
	}

	if _, err := h.discord.ChannelMessageSendEmbed(h.config.DiscordChannelId, msg); err != nil {
		c.WithField("err", err).Warn("ChannelMessageSendEmbed failed")
		return err
	}
	return nil
}
