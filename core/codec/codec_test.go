package codec_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apicore/core/codec"
	"github.com/dmitrymomot/apicore/core/model"
)

type orderRequest struct {
	model.Request
	Name     string   `json:"name" xml:"name"`
	Quantity int      `json:"quantity" xml:"quantity"`
	Tags     []string `json:"tags,omitempty" xml:"tags,omitempty"`
	Active   bool     `json:"active" xml:"active"`
}

type orderResponse struct {
	model.Response
	OrderID  string          `json:"orderId" xml:"orderId"`
	Amount   decimal.Decimal `json:"amount" xml:"amount"`
	PlacedAt time.Time       `json:"placedAt" xml:"placedAt"`
}

func codecs() []codec.Codec {
	return []codec.Codec{codec.JSON(), codec.XML()}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, c := range codecs() {
		t.Run(c.Format().String()+" request", func(t *testing.T) {
			t.Parallel()

			want := orderRequest{Name: "widget", Quantity: 3, Tags: []string{"a", "b"}, Active: true}
			raw, err := c.Encode(want)
			require.NoError(t, err)

			got, err := codec.Decode[orderRequest](c, raw)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})

		t.Run(c.Format().String()+" response", func(t *testing.T) {
			t.Parallel()

			want := orderResponse{
				Response: model.Response{Code: 0, Page: 1, PerPage: 10, Total: 2},
				OrderID:  "ord-1",
				Amount:   decimal.RequireFromString("12.5"),
				PlacedAt: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
			}
			raw, err := c.Encode(want)
			require.NoError(t, err)

			got, err := codec.Decode[orderResponse](c, raw)
			require.NoError(t, err)
			assert.Equal(t, want.Response, got.Response)
			assert.Equal(t, want.OrderID, got.OrderID)
			assert.True(t, want.Amount.Equal(got.Amount))
			assert.True(t, want.PlacedAt.Equal(got.PlacedAt))
		})

		t.Run(c.Format().String()+" error response", func(t *testing.T) {
			t.Parallel()

			want := model.NewError(5, "Exception", "")
			raw, err := c.Encode(want)
			require.NoError(t, err)

			got, err := codec.Decode[model.ErrorResponse](c, raw)
			require.NoError(t, err)
			assert.Equal(t, *want, got)
		})
	}
}

func TestTransientFields(t *testing.T) {
	t.Parallel()

	req := orderRequest{
		Request: model.Request{
			Page:   2,
			Search: "term",
			Fields: []string{"yy", "zz"},
			Sorted: model.ParseSort("+x"),
		},
		Name: "widget",
	}

	t.Run("json excludes meta fields", func(t *testing.T) {
		t.Parallel()

		raw, err := codec.JSON().Encode(req)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"widget","quantity":0,"active":false}`, raw)
	})

	t.Run("xml excludes meta fields", func(t *testing.T) {
		t.Parallel()

		raw, err := codec.XML().Encode(req)
		require.NoError(t, err)
		assert.Equal(t, "<orderRequest><name>widget</name><quantity>0</quantity><active>false</active></orderRequest>", raw)
	})

	t.Run("json ignores meta fields on input", func(t *testing.T) {
		t.Parallel()

		got, err := codec.Decode[orderRequest](codec.JSON(), `{"name":"w","Page":9,"Search":"s","Fields":["a"]}`)
		require.NoError(t, err)
		assert.Equal(t, model.Request{}, got.Request)
		assert.Equal(t, "w", got.Name)
	})

	t.Run("xml ignores meta fields on input", func(t *testing.T) {
		t.Parallel()

		got, err := codec.Decode[orderRequest](codec.XML(), `<orderRequest><name>w</name><Page>9</Page><Search>s</Search></orderRequest>`)
		require.NoError(t, err)
		assert.Equal(t, model.Request{}, got.Request)
		assert.Equal(t, "w", got.Name)
	})

	t.Run("error description stays off the wire", func(t *testing.T) {
		t.Parallel()

		raw, err := codec.JSON().Encode(model.NewError(5, "Exception", "raw detail"))
		require.NoError(t, err)
		assert.Equal(t, `{"code":5,"message":"Exception"}`, raw)
	})
}

func TestValueFormatting(t *testing.T) {
	t.Parallel()

	resp := orderResponse{
		OrderID:  "ord-1",
		Amount:   decimal.RequireFromString("12.50"),
		PlacedAt: time.Date(2024, 3, 1, 10, 30, 0, 0, time.FixedZone("CET", 3600)),
	}

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		raw, err := codec.JSON().Encode(resp)
		require.NoError(t, err)
		assert.Contains(t, raw, `"amount":"12.5"`)
		assert.Contains(t, raw, `"placedAt":"2024-03-01T10:30:00+01:00"`)
	})

	t.Run("xml", func(t *testing.T) {
		t.Parallel()

		raw, err := codec.XML().Encode(resp)
		require.NoError(t, err)
		assert.Contains(t, raw, `<amount>12.5</amount>`)
		assert.Contains(t, raw, `<placedAt>2024-03-01T10:30:00+01:00</placedAt>`)
	})
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		codec codec.Codec
		data  string
	}{
		{name: "json malformed", codec: codec.JSON(), data: `{"name":`},
		{name: "json type mismatch", codec: codec.JSON(), data: `{"quantity":"many"}`},
		{name: "json empty", codec: codec.JSON(), data: ``},
		{name: "json trailing data", codec: codec.JSON(), data: `{"name":"a"} {"name":"b"}`},
		{name: "xml malformed", codec: codec.XML(), data: `<orderRequest><name>`},
		{name: "xml type mismatch", codec: codec.XML(), data: `<orderRequest><quantity>many</quantity></orderRequest>`},
		{name: "xml empty", codec: codec.XML(), data: ``},
		{name: "xml trailing element", codec: codec.XML(), data: `<orderRequest></orderRequest><orderRequest></orderRequest>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := codec.Decode[orderRequest](tt.codec, tt.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, codec.ErrDeserialization)

			var decodeErr *codec.DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, tt.codec.Format(), decodeErr.Format)
		})
	}

	t.Run("non pointer target", func(t *testing.T) {
		t.Parallel()

		err := codec.JSON().Decode(`{}`, orderRequest{})
		assert.ErrorIs(t, err, codec.ErrDeserialization)
		assert.ErrorIs(t, err, codec.ErrInvalidTarget)
	})
}

func TestEncodeErrors(t *testing.T) {
	t.Parallel()

	_, err := codec.XML().Encode(map[string]any{"a": 1})
	assert.ErrorIs(t, err, codec.ErrSerialization)

	_, err = codec.JSON().Encode(make(chan int))
	assert.ErrorIs(t, err, codec.ErrSerialization)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    codec.Format
		wantErr bool
	}{
		{in: "json", want: codec.FormatJSON},
		{in: "JSON", want: codec.FormatJSON},
		{in: "application/json; charset=utf-8", want: codec.FormatJSON},
		{in: "xml", want: codec.FormatXML},
		{in: "text/xml", want: codec.FormatXML},
		{in: "application/xml", want: codec.FormatXML},
		{in: "yaml", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := codec.ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, codec.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, codec.FormatJSON, codec.Format("").OrDefault(codec.DefaultFormat))
	assert.Equal(t, codec.FormatXML, codec.FormatXML.OrDefault(codec.FormatJSON))
	assert.Contains(t, codec.FormatXML.ContentType(), "application/xml")
}

func TestSet(t *testing.T) {
	t.Parallel()

	set := codec.DefaultSet()
	assert.Equal(t, []codec.Format{codec.FormatJSON, codec.FormatXML}, set.Formats())

	c, err := set.Lookup(codec.FormatXML)
	require.NoError(t, err)
	assert.Equal(t, codec.FormatXML, c.Format())

	_, err = codec.NewSet(codec.JSON()).Lookup(codec.FormatXML)
	assert.ErrorIs(t, err, codec.ErrUnsupportedFormat)
}
