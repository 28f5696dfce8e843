package orchestrate

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hafidaso/CodeTransEval/internal/safeio"
)

// packageJSON keeps field order stable across runs.
type packageJSON struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Main        string            `json:"main"`
	Scripts     map[string]string `json:"scripts"`
	Keywords    []string          `json:"keywords"`
	Author      string            `json:"author"`
	License     string            `json:"license"`
}

const requirementsTxt = `# Python dependencies for converted project
# Add your project dependencies here
`

func pythonReadme(sourceLang string) string {
	return fmt.Sprintf(`# Python Project (Converted from %s)

This project was automatically converted from %s to Python.

## Setup
`+"```bash"+`
pip install -r requirements.txt
`+"```"+`

## Usage
Run the main script:
`+"```bash"+`
python main.py
`+"```"+`

## Notes
- This is an automated conversion and may require manual adjustments
- Review the converted code for Python-specific optimizations
- Consider using Python libraries for better performance
`, sourceLang, sourceLang)
}

func javascriptReadme(sourceLang string) string {
	return fmt.Sprintf(`# JavaScript Project (Converted from %s)

This project was automatically converted from %s to JavaScript.

## Setup
`+"```bash"+`
npm install
`+"```"+`

## Usage
Run the main script:
`+"```bash"+`
npm start
`+"```"+`

## Notes
- This is an automated conversion and may require manual adjustments
- Review the converted code for JavaScript-specific optimizations
- Consider using modern JavaScript features (ES6+) for better code
`, sourceLang, sourceLang)
}

func javaReadme(sourceLang string) string {
	return fmt.Sprintf(`# Java Project (Converted from %s)

This project was automatically converted from %s to Java.

## Setup
`+"```bash"+`
# Using Maven
mvn compile
mvn exec:java -Dexec.mainClass="Main"

# Using Java directly
javac *.java
java Main
`+"```"+`

## Notes
- This is an automated conversion and may require manual adjustments
- Review the converted code for Java-specific optimizations
- Consider using Java libraries and frameworks for better functionality
- Add proper exception handling and type safety
`, sourceLang, sourceLang)
}

func pomXML(sourceLang string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0"
         xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
         xsi:schemaLocation="http://maven.apache.org/POM/4.0.0
         http://maven.apache.org/xsd/maven-4.0.0.xsd">
    <modelVersion>4.0.0</modelVersion>

    <groupId>com.converted</groupId>
    <artifactId>converted-project</artifactId>
    <version>1.0.0</version>
    <packaging>jar</packaging>

    <name>Converted Project</name>
    <description>Java project converted from %s</description>

    <properties>
        <maven.compiler.source>11</maven.compiler.source>
        <maven.compiler.target>11</maven.compiler.target>
        <project.build.sourceEncoding>UTF-8</project.build.sourceEncoding>
    </properties>

    <dependencies>
        <!-- Add your dependencies here -->
    </dependencies>

    <build>
        <plugins>
            <plugin>
                <groupId>org.apache.maven.plugins</groupId>
                <artifactId>maven-compiler-plugin</artifactId>
                <version>3.8.1</version>
                <configuration>
                    <source>11</source>
                    <target>11</target>
                </configuration>
            </plugin>
        </plugins>
    </build>
</project>`, sourceLang)
}

// sourceLangTitle capitalizes the source half of a conversion id the
// plain way, so javascript becomes Javascript, not JavaScript.
func sourceLangTitle(conversionID string) string {
	src, _, _ := strings.Cut(conversionID, "_to_")
	if src == "" {
		return src
	}
	return strings.ToUpper(src[:1]) + strings.ToLower(src[1:])
}

// writeScaffold emits the project files for the target language. The
// choice depends only on the conversion id, never on the converted
// files. The *_to_python group for non-C sources also writes a pom.xml
// describing a Python conversion; consumers rely on that file being
// present, so it stays.
func writeScaffold(targetRoot, conversionID string) error {
	write := func(name, content string) error {
		return safeio.WriteFileAtomic(filepath.Join(targetRoot, name), []byte(content), 0o644)
	}
	src := sourceLangTitle(conversionID)

	switch conversionID {
	case "c_to_python":
		if err := write("requirements.txt", requirementsTxt); err != nil {
			return err
		}
		return write("README.md", pythonReadme(src))

	case "python_to_javascript", "java_to_javascript":
		pkg := packageJSON{
			Name:        "converted-project",
			Version:     "1.0.0",
			Description: fmt.Sprintf("JavaScript project converted from %s", src),
			Main:        "index.js",
			Scripts: map[string]string{
				"start": "node index.js",
				"test":  `echo "Error: no test specified" && exit 1`,
			},
			License:  "ISC",
			Keywords: []string{},
		}
		b, err := json.MarshalIndent(pkg, "", "  ")
		if err != nil {
			return err
		}
		if err := write("package.json", string(b)); err != nil {
			return err
		}
		return write("README.md", javascriptReadme(src))

	case "python_to_java", "javascript_to_java":
		if err := write("pom.xml", pomXML(src)); err != nil {
			return err
		}
		return write("README.md", javaReadme(src))

	case "java_to_python", "javascript_to_python", "typescript_to_python":
		if err := write("requirements.txt", requirementsTxt); err != nil {
			return err
		}
		if err := write("README.md", pythonReadme(src)); err != nil {
			return err
		}
		return write("pom.xml", pomXML("Python"))
	}
	return nil
}
