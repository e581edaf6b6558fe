package pom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dkrasnow/m2scope/pkg/errors"
)

func TestParse(t *testing.T) {
	content := `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <groupId>com.example</groupId>
  <artifactId>my-app</artifactId>
  <version>1.0.0</version>

  <parent>
    <groupId>com.example</groupId>
    <artifactId>parent-pom</artifactId>
    <version>2.0</version>
  </parent>

  <properties>
    <core.version>3.2.1</core.version>
    <maven.compiler.source>17</maven.compiler.source>
  </properties>

  <dependencies>
    <dependency>
      <groupId>org.springframework</groupId>
      <artifactId>spring-core</artifactId>
      <version>${core.version}</version>
    </dependency>
    <dependency>
      <groupId>junit</groupId>
      <artifactId>junit</artifactId>
      <version>4.13</version>
      <scope>test</scope>
      <optional>true</optional>
      <exclusions>
        <exclusion>
          <groupId>org.hamcrest</groupId>
          <artifactId>hamcrest-core</artifactId>
        </exclusion>
      </exclusions>
    </dependency>
  </dependencies>

  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>com.google.guava</groupId>
        <artifactId>guava</artifactId>
        <version>31.0-jre</version>
      </dependency>
    </dependencies>
  </dependencyManagement>

  <modules>
    <module>core</module>
    <module>api</module>
  </modules>
</project>`

	proj, err := Parse([]byte(content), "test.pom")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if proj.GroupID != "com.example" || proj.ArtifactID != "my-app" || proj.Version != "1.0.0" {
		t.Errorf("coordinate = %s:%s:%s, want com.example:my-app:1.0.0",
			proj.GroupID, proj.ArtifactID, proj.Version)
	}

	if proj.Parent == nil {
		t.Fatal("expected parent")
	}
	if proj.Parent.ArtifactID != "parent-pom" || proj.Parent.Version != "2.0" {
		t.Errorf("parent = %+v", proj.Parent)
	}

	if got := proj.Properties["core.version"]; got != "3.2.1" {
		t.Errorf("property core.version = %q, want %q", got, "3.2.1")
	}
	if got := proj.Properties["maven.compiler.source"]; got != "17" {
		t.Errorf("property maven.compiler.source = %q, want %q", got, "17")
	}

	if len(proj.Dependencies) != 2 {
		t.Fatalf("len(Dependencies) = %d, want 2", len(proj.Dependencies))
	}

	spring := proj.Dependencies[0]
	if spring.Version != "${core.version}" {
		t.Errorf("version = %q, want literal placeholder", spring.Version)
	}

	junit := proj.Dependencies[1]
	if junit.Scope != "test" || junit.Optional != "true" {
		t.Errorf("junit = %+v", junit)
	}
	if len(junit.Exclusions) != 1 || junit.Exclusions[0].GroupID != "org.hamcrest" {
		t.Errorf("exclusions = %+v", junit.Exclusions)
	}

	if len(proj.Management) != 1 || proj.Management[0].ArtifactID != "guava" {
		t.Errorf("management = %+v", proj.Management)
	}

	if len(proj.Modules) != 2 || proj.Modules[0] != "core" || proj.Modules[1] != "api" {
		t.Errorf("modules = %v", proj.Modules)
	}
}

func TestParseWithoutNamespace(t *testing.T) {
	content := `<project>
  <groupId>org.acme</groupId>
  <artifactId>widget</artifactId>
  <version>0.1</version>
  <properties>
    <widget.flag>on</widget.flag>
  </properties>
</project>`

	proj, err := Parse([]byte(content), "widget.pom")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if proj.GroupID != "org.acme" {
		t.Errorf("GroupID = %q", proj.GroupID)
	}
	if proj.Properties["widget.flag"] != "on" {
		t.Errorf("properties = %v", proj.Properties)
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("<project><groupId>oops"), "broken.pom")
	if !errors.Is(err, errors.ErrCodeParse) {
		t.Errorf("expected PARSE_ERROR, got %v", err)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "absent.pom"))
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("expected ARTIFACT_NOT_FOUND, got %v", err)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.pom")
	if err := os.WriteFile(path, []byte(`<project><artifactId>a</artifactId></project>`), 0644); err != nil {
		t.Fatal(err)
	}

	proj, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if proj.ArtifactID != "a" {
		t.Errorf("ArtifactID = %q", proj.ArtifactID)
	}
}

func TestEffectiveFallbacks(t *testing.T) {
	proj := &Project{
		ArtifactID: "child",
		Parent:     &Parent{GroupID: "com.example", ArtifactID: "parent", Version: "5"},
	}

	if got := proj.EffectiveGroupID(); got != "com.example" {
		t.Errorf("EffectiveGroupID = %q", got)
	}
	if got := proj.EffectiveVersion(); got != "5" {
		t.Errorf("EffectiveVersion = %q", got)
	}

	proj.GroupID = "org.other"
	proj.Version = "6"
	if got := proj.EffectiveGroupID(); got != "org.other" {
		t.Errorf("EffectiveGroupID = %q", got)
	}
	if got := proj.EffectiveVersion(); got != "6" {
		t.Errorf("EffectiveVersion = %q", got)
	}
}
