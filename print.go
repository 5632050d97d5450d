package serializers

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/tryfix/log"
)

// Table renders the config as a text table
func (c *SerializerConfig) Table() string {
	registry := `config`
	if c.registryConfigOrClient.IsRight() {
		registry = `client`
	} else if cfg, ok := c.registryConfigOrClient.Left(); ok {
		registry = fmt.Sprintf(`config (%s)`, cfg.URL)
	}

	props := c.groupProperties

	b := new(bytes.Buffer)
	table := tablewriter.NewWriter(b)
	table.SetHeader([]string{`property`, `value`})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	table.SetAutoFormatHeaders(true)
	table.SetAutoWrapText(false)
	table.AppendBulk([][]string{
		{`group id`, c.groupID},
		{`registry`, registry},
		{`register schema`, fmt.Sprint(c.registerSchema)},
		{`register codec`, fmt.Sprint(c.registerCodec)},
		{`codec`, c.codec.Name()},
		{`decoders`, strings.Join(c.decoder.CodecTypes(), `, `)},
		{`fail on codec mismatch`, fmt.Sprint(c.failOnCodecMismatch)},
		{`create group`, fmt.Sprint(c.createGroup)},
		{`serialization format`, props.SerializationFormat.String()},
		{`compatibility`, props.Compatibility.Level()},
		{`allow multiple types`, fmt.Sprint(props.AllowMultipleTypes)},
	})
	table.Render()

	return b.String()
}

// Print logs the config table through logger
func (c *SerializerConfig) Print(logger log.Logger) {
	logger.Info(fmt.Sprintf("serializer config\n%s", c.Table()))
}
