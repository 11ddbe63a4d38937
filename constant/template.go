// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// BulmaswatchVersion is stamped into the license banner of every generated entry file.
const BulmaswatchVersion = "1.0.0"

// InitialVariablesTemplate is a Go text/template for <theme>/initial-variables.scss.
const InitialVariablesTemplate = `@use "../utilities/functions.scss" as fn;
@use "sass:color";

////////////////////////////////////////////////
// {{ .Title }}
////////////////////////////////////////////////

// Shared defaults and helpers.
@import "../utilities/light-initial-variables.scss";
@import "../utilities/derived-variables.scss";

// Theme values that differ from the shared defaults.
{{ range .Variables }}{{ .Name }}: {{ .Value }};
{{ end }}
$my-colors: fn.mergeColorMaps(
  (
{{- range .Colors }}
    "{{ .Name }}": (
      {{ .Base }},
      {{ .Invert }},
    ),
{{- end }}
  ),
  $custom-colors // extra colors can be merged in through $custom-colors
);
`

// ThemeTemplate is a Go text/template for <theme>/<theme>.scss.
const ThemeTemplate = `@use "sass:list";
@use "sass:meta";
@use "../utilities/css-variables" as cv;
@use "../utilities/functions.scss" as fn;
@use "../utilities/setup";
@use "../utilities/derived-variables" as dv;
@use "initial-variables" as iv;

// Lightness of the main scheme color for {{ .Title }}.
$scheme-main-l: {{ .SchemeMainL }};
$scheme-main: hsl(iv.$scheme-h, iv.$scheme-s, $scheme-main-l);

@mixin light-theme {
  @include cv.register-vars(
    (
{{- range $i, $r := .Registrations }}{{ if $i }},{{ end }}
      "{{ $r.Name }}": {{ $r.Value }}
{{- end }}
    )
  );

  // Every entry of iv.$my-colors is a (base, invert) pair.
  $no-palette: ("white", "black", "light", "dark");

  @each $name, $color-data in iv.$my-colors {
    $base: $color-data;
    $invert: null;
    $light: null;
    $dark: null;

    @if meta.type-of($color-data) == "list" {
      $base: list.nth($color-data, 1);
      @if list.length($color-data) > 1 {
        $invert: list.nth($color-data, 2);
      }
    }

    @if list.index($no-palette, $name) {
      @include cv.generate-basic-palette($name, $base, $invert);
    } @else {
      @include cv.generate-color-palette(
        $name,
        $base,
        $scheme-main-l,
        $invert,
        $light,
        $dark
      );
    }

    @include cv.generate-on-scheme-colors($name, $base, $scheme-main);
  }

  @each $name, $shade in dv.$shades {
    @include cv.register-var($name, $shade);
  }

  @include cv.register-hsl("shadow", dv.$shadow-color);

  @each $size in dv.$sizes {
    $i: list.index(dv.$sizes, $size);
    $name: "size-#{$i}";
    @include cv.register-var($name, $size);
  }
}
`

// EntryTemplate is a Go text/template for <theme>/bulmaswatch.scss.
const EntryTemplate = `@use "../utilities/setup";
@use "{{ .Slug }}";
@use "overrides";
@use "bulma/sass" as bulma;

// Entry point of the {{ .Title }} theme.

/*! bulmaswatch v{{ .Version }} | MIT License */

:root {
  @include {{ .Slug }}.light-theme;
  @include setup.setup-theme;
}

// Dark variants are not generated. Enable once {{ .Slug }}.dark-theme exists:
/*
@media (prefers-color-scheme: dark) {
  :root {
    @include {{ .Slug }}.dark-theme;
  }
}

[data-theme="dark"],
.theme-dark {
  @include {{ .Slug }}.dark-theme;
}
*/
`

// OverridesTemplate is a Go text/template for <theme>/overrides.scss.
const OverridesTemplate = `// {{ .Title }} overrides
// Rules that cannot be expressed as variables belong here.

@import "../utilities/mixins.scss";
@import "initial-variables";

// -----------------------------------------------------------------------------
// Port the selectors from the legacy _bootswatch.scss of {{ .Title }} by hand.
// Bulma 1.x components read CSS variables, so prefer cv.getVar() over Sass
// color functions where possible.
//
// Sketch:
/*
@mixin btn-gradient($color) {
  background-image: linear-gradient(
    180deg,
    color.adjust($color, $lightness: 8%) 0%,
    $color 60%,
    color.adjust($color, $lightness: -4%) 100%
  );
}

.button {
  @each $name, $pair in $my-colors {
    $color: list.nth($pair, 1);
    &.is-#{$name}:not(.is-outlined):not(.is-inverted) {
      @include btn-gradient($color);
    }
  }
}

.navbar:not(.is-transparent) {
  background-color: $primary;
}
*/
// -----------------------------------------------------------------------------
`
