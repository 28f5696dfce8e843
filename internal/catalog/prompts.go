package catalog

const cToPythonPrompt = `Convert the following C code to Python.
Maintain the same functionality and logic, but use Python syntax and idioms.
Remove C-specific elements like includes, semicolons, and braces.
Convert printf to print, scanf to input, and adjust variable declarations.

C Code:
{{.SourceCode}}

Python Code:`

const pythonToJSPrompt = `Convert the following Python code to JavaScript.
Maintain the same functionality and logic, but use JavaScript syntax and idioms.
Convert print to console.log, function definitions to JavaScript style,
and adjust variable declarations and control structures.

Python Code:
{{.SourceCode}}

JavaScript Code:`

const pythonToJavaPrompt = `Convert the following Python code to Java.
Maintain the same functionality and logic, but use Java syntax and idioms.
Convert print to System.out.println, function definitions to Java methods,
add proper class structure, and adjust variable declarations and control structures.

Python Code:
{{.SourceCode}}

Java Code:`

const javaToPythonPrompt = `Convert the following Java code to Python.
Maintain the same functionality and logic, but use Python syntax and idioms.
Convert System.out.println to print, Java methods to Python functions,
remove type declarations, and adjust control structures to Python style.
Handle Java-specific features like interfaces, abstract classes, and generics appropriately.

Java Code:
{{.SourceCode}}

Python Code:`

const jsToPythonPrompt = `Convert the following JavaScript code to Python.
Maintain the same functionality and logic, but use Python syntax and idioms.
Convert console.log to print, JavaScript functions to Python functions,
adjust variable declarations, and convert JavaScript-specific features to Python equivalents.
Handle async/await, promises, and JavaScript objects appropriately.

JavaScript Code:
{{.SourceCode}}

Python Code:`

const tsToPythonPrompt = `Convert the following TypeScript code to Python.
Maintain the same functionality and logic, but use Python syntax and idioms.
Convert console.log to print, TypeScript interfaces to Python classes or type hints,
remove type annotations, and adjust control structures to Python style.
Handle TypeScript-specific features like enums, generics, and decorators appropriately.

TypeScript Code:
{{.SourceCode}}

Python Code:`

const javaToJSPrompt = `Convert the following Java code to JavaScript.
Maintain the same functionality and logic, but use JavaScript syntax and idioms.
Convert System.out.println to console.log, Java methods to JavaScript functions,
remove type declarations, and adjust control structures to JavaScript style.
Handle Java-specific features like interfaces, abstract classes, and generics appropriately.

Java Code:
{{.SourceCode}}

JavaScript Code:`

const jsToJavaPrompt = `Convert the following JavaScript code to Java.
Maintain the same functionality and logic, but use Java syntax and idioms.
Convert console.log to System.out.println, JavaScript functions to Java methods,
add proper class structure, and adjust variable declarations and control structures.
Handle JavaScript-specific features like async/await, promises, and objects appropriately.

JavaScript Code:
{{.SourceCode}}

Java Code:`
